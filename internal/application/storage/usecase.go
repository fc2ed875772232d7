package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// UseCase operaciones del Storage Ledger: alta de unidades de
// almacenamiento y lecturas agregadas de capacidad, ocupación y existencias.
type UseCase struct {
	txRunner    TxRunner
	branchRepo  repository.BranchRepository
	typeRepo    repository.ProductTypeRepository
	storageRepo repository.StorageRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	typeRepo repository.ProductTypeRepository,
	storageRepo repository.StorageRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		branchRepo:  branchRepo,
		typeRepo:    typeRepo,
		storageRepo: storageRepo,
	}
}

// CreateStorageUnit registra una bodega o estante. La capacidad queda fija
// desde la creación. Precondiciones: la sucursal existe y ofrece el tipo de
// producto (vende al menos un producto de ese tipo).
func (uc *UseCase) CreateStorageUnit(ctx context.Context, in dto.CreateStorageUnitRequest) (*entity.StorageUnit, error) {
	if in.Kind != entity.UnitKindWarehouse && in.Kind != entity.UnitKindShelf {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.UnitKindShelf && in.RestockLevel == nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.CapacityVolume.GreaterThan(decimal.Zero) || !in.CapacityWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.BranchNotFound(in.BranchID)
	}
	ptype, err := uc.typeRepo.GetByID(in.ProductTypeID)
	if err != nil {
		return nil, err
	}
	if ptype == nil {
		return nil, domain.ProductTypeNotFound(in.ProductTypeID)
	}

	var unit *entity.StorageUnit
	err = uc.txRunner.Run(ctx, func(
		storageRepo repository.StorageRepository,
		termRepo repository.SalesTermRepository,
		seq repository.Sequence,
	) error {
		offered, err := termRepo.TypeOffered(in.BranchID, in.ProductTypeID)
		if err != nil {
			return err
		}
		if !offered {
			return domain.ProductTypeNotOffered(in.BranchID, in.ProductTypeID)
		}
		id, err := seq.NextID()
		if err != nil {
			return err
		}
		unit = &entity.StorageUnit{
			ID:             id,
			BranchID:       in.BranchID,
			ProductTypeID:  in.ProductTypeID,
			Kind:           in.Kind,
			CapacityVolume: in.CapacityVolume,
			CapacityWeight: in.CapacityWeight,
			RestockLevel:   in.RestockLevel,
		}
		return storageRepo.CreateUnit(unit)
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// Capacity capacidad total de las unidades de una sucursal para un tipo,
// filtrada por clase (kind vacío = bodegas y estantes).
func (uc *UseCase) Capacity(ctx context.Context, branchID, typeID int64, kind string) (*dto.CapacityResponse, error) {
	if err := validKindFilter(kind); err != nil {
		return nil, err
	}
	totals, err := uc.storageRepo.Capacity(branchID, typeID, kind)
	if err != nil {
		return nil, err
	}
	return &dto.CapacityResponse{
		BranchID:      branchID,
		ProductTypeID: typeID,
		Kind:          kind,
		Volume:        totals.Volume,
		Weight:        totals.Weight,
	}, nil
}

// Occupied volumen y peso ocupados en las unidades de una sucursal/tipo,
// recalculados desde las filas de ocupación.
func (uc *UseCase) Occupied(ctx context.Context, branchID, typeID int64, kind string) (*dto.CapacityResponse, error) {
	if err := validKindFilter(kind); err != nil {
		return nil, err
	}
	totals, err := uc.storageRepo.Occupied(branchID, typeID, kind)
	if err != nil {
		return nil, err
	}
	return &dto.CapacityResponse{
		BranchID:      branchID,
		ProductTypeID: typeID,
		Kind:          kind,
		Volume:        totals.Volume,
		Weight:        totals.Weight,
	}, nil
}

// QuantityOnHand existencias de un producto en una sucursal, restringidas
// por clase de unidad (kind vacío = total bodega + estante).
func (uc *UseCase) QuantityOnHand(ctx context.Context, branchID, productID int64, kind string) (*dto.QuantityOnHandResponse, error) {
	if err := validKindFilter(kind); err != nil {
		return nil, err
	}
	qty, err := uc.storageRepo.QuantityOnHand(branchID, productID, kind)
	if err != nil {
		return nil, err
	}
	return &dto.QuantityOnHandResponse{
		BranchID:  branchID,
		ProductID: productID,
		Kind:      kind,
		Quantity:  qty,
	}, nil
}

func validKindFilter(kind string) error {
	switch kind {
	case "", entity.UnitKindWarehouse, entity.UnitKindShelf:
		return nil
	}
	return domain.ErrInvalidInput
}
