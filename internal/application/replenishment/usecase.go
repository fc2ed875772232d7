package replenishment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/storage"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
	"github.com/jhoicas/superandes-api/pkg/logger"
)

// UseCase orquestador de reposición: decide si un pedido se justifica y
// cabe físicamente, emite órdenes de compra y concilia sus llegadas en el
// Storage Ledger.
type UseCase struct {
	txRunner     TxRunner
	branchRepo   repository.BranchRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.OrderRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.OrderRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		branchRepo:   branchRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		log:          log,
	}
}

// GetOrder devuelve una orden de compra por id.
func (uc *UseCase) GetOrder(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.OrderNotFound(id)
	}
	return order, nil
}

// ListOrders devuelve todas las órdenes de compra.
func (uc *UseCase) ListOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	return uc.orderRepo.List()
}

// PlaceOrder registra una orden de compra si y solo si pasan, en orden:
//  1. la sucursal vende el producto (existe el término de venta);
//  2. el proveedor provee el producto;
//  3. las existencias totales (bodega + estante) están en o bajo el nivel
//     de reorden;
//  4. la huella de la cantidad de recompra cabe en la capacidad libre
//     (bodegas + estantes) del tipo de producto en la sucursal.
//
// La fila del término de venta queda bloqueada durante toda la secuencia,
// de modo que dos chequeos de reorden concurrentes sobre el mismo
// (sucursal, producto) se serialicen y no dupliquen órdenes.
func (uc *UseCase) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*entity.PurchaseOrder, error) {
	if in.AgreedPrice.LessThan(decimal.Zero) || in.ExpectedDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.BranchNotFound(in.BranchID)
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.SupplierNotFound(in.SupplierID)
	}

	var order *entity.PurchaseOrder
	err = uc.txRunner.RunReplenishment(ctx, func(
		termRepo repository.SalesTermRepository,
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
		storageRepo repository.StorageRepository,
		orderRepo repository.OrderRepository,
		seq repository.Sequence,
	) error {
		term, err := termRepo.GetForUpdate(in.BranchID, in.ProductID)
		if err != nil {
			return err
		}
		if term == nil {
			return domain.NotSold(in.BranchID, in.ProductID)
		}

		supplies, err := supplierRepo.Supplies(in.SupplierID, in.ProductID)
		if err != nil {
			return err
		}
		if !supplies {
			return domain.SupplierMismatch(in.SupplierID, in.ProductID)
		}

		onHand, err := storageRepo.QuantityOnHand(in.BranchID, in.ProductID, "")
		if err != nil {
			return err
		}
		if onHand.GreaterThan(term.ReorderLevel) {
			return domain.AboveReorderLevel(in.BranchID, in.ProductID, onHand, term.ReorderLevel)
		}

		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ProductNotFound(in.ProductID)
		}

		total, err := storageRepo.Capacity(in.BranchID, product.TypeID, "")
		if err != nil {
			return err
		}
		used, err := storageRepo.Occupied(in.BranchID, product.TypeID, "")
		if err != nil {
			return err
		}
		freeVol := total.Volume.Sub(used.Volume)
		freeWeight := total.Weight.Sub(used.Weight)
		reqVol := term.RestockQty.Mul(product.PackageVolume)
		reqWeight := term.RestockQty.Mul(product.PackageWeight)
		if reqVol.GreaterThan(freeVol) {
			return domain.InsufficientCapacity(in.BranchID, product.TypeID, reqVol, freeVol)
		}
		if reqWeight.GreaterThan(freeWeight) {
			return domain.InsufficientCapacity(in.BranchID, product.TypeID, reqWeight, freeWeight)
		}

		id, err := seq.NextID()
		if err != nil {
			return err
		}
		order = &entity.PurchaseOrder{
			ID:           id,
			SupplierID:   in.SupplierID,
			BranchID:     in.BranchID,
			ProductID:    in.ProductID,
			Quantity:     term.RestockQty,
			AgreedPrice:  in.AgreedPrice,
			ExpectedDate: in.ExpectedDate,
			Status:       entity.OrderStatusPending,
			CreatedAt:    time.Now(),
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("order_id", order.ID).
		Int64("branch_id", order.BranchID).
		Int64("supplier_id", order.SupplierID).
		Int64("product_id", order.ProductID).
		Str("quantity", order.Quantity.String()).
		Msg("orden de compra registrada")
	return order, nil
}

// RecordArrival concilia la llegada de un pedido. Idempotente: una segunda
// notificación sobre una orden ya ENTREGADA no vuelve a aumentar el
// inventario. En la primera llegada marca la orden como entregada, estampa
// fecha y calificación, y almacena la cantidad en la primera bodega del
// tipo de producto con capacidad libre suficiente. Si ninguna bodega
// alcanza, la orden queda entregada igualmente y el resultado reporta
// desbordamiento (el negocio decide después qué hacer con la mercancía).
func (uc *UseCase) RecordArrival(ctx context.Context, orderID int64, qty decimal.Decimal, rating string) (*dto.ArrivalResult, error) {
	if !qty.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	result := &dto.ArrivalResult{OrderID: orderID, Quantity: qty}
	err := uc.txRunner.RunReplenishment(ctx, func(
		termRepo repository.SalesTermRepository,
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
		storageRepo repository.StorageRepository,
		orderRepo repository.OrderRepository,
		seq repository.Sequence,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.OrderNotFound(orderID)
		}
		if order.Status == entity.OrderStatusDelivered {
			result.AlreadyDelivered = true
			return nil
		}

		now := time.Now()
		if err := orderRepo.MarkDelivered(orderID, now, rating); err != nil {
			return err
		}

		product, err := productRepo.GetByID(order.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ProductNotFound(order.ProductID)
		}

		units, err := storageRepo.UnitsFor(order.BranchID, product.TypeID, entity.UnitKindWarehouse)
		if err != nil {
			return err
		}
		needVol := qty.Mul(product.PackageVolume)
		needWeight := qty.Mul(product.PackageWeight)
		for _, unit := range units {
			free, err := storage.FreeCapacity(storageRepo, unit)
			if err != nil {
				return err
			}
			if free.Volume.GreaterThanOrEqual(needVol) && free.Weight.GreaterThanOrEqual(needWeight) {
				if err := storage.AdjustOccupancy(storageRepo, unit, product, qty, now); err != nil {
					return err
				}
				unitID := unit.ID
				result.StockedUnitID = &unitID
				return nil
			}
		}
		result.Overflow = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Overflow {
		uc.log.Warn().
			Int64("order_id", orderID).
			Str("quantity", qty.String()).
			Msg("llegada sin bodega con capacidad libre suficiente; orden entregada sin almacenar")
	}
	return result, nil
}
