package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.StorageRepository = (*StorageRepo)(nil)

// StorageRepo implementación de StorageRepository sobre PostgreSQL. La
// ocupación se agrega siempre desde las filas de occupancies cruzadas con
// la huella del producto; no hay contadores desnormalizados que puedan
// desincronizarse.
type StorageRepo struct {
	q Querier
}

// NewStorageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageRepository(q Querier) *StorageRepo {
	return &StorageRepo{q: q}
}

// CreateUnit inserta una unidad de almacenamiento.
func (r *StorageRepo) CreateUnit(unit *entity.StorageUnit) error {
	query := `
		INSERT INTO storage_units
			(id, branch_id, product_type_id, kind, capacity_volume, capacity_weight, restock_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.BranchID, unit.ProductTypeID, unit.Kind,
		unit.CapacityVolume, unit.CapacityWeight, unit.RestockLevel)
	if err != nil {
		return fmt.Errorf("create storage unit: %w", err)
	}
	return nil
}

// GetUnit obtiene una unidad por id; nil si no existe.
func (r *StorageRepo) GetUnit(id int64) (*entity.StorageUnit, error) {
	query := `
		SELECT id, branch_id, product_type_id, kind, capacity_volume, capacity_weight, restock_level
		FROM storage_units WHERE id = $1`
	var u entity.StorageUnit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.BranchID, &u.ProductTypeID, &u.Kind,
		&u.CapacityVolume, &u.CapacityWeight, &u.RestockLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage unit: %w", err)
	}
	return &u, nil
}

// UnitsFor devuelve las unidades de la sucursal para un tipo de producto,
// filtradas por clase (kind vacío = ambas), ordenadas por id.
func (r *StorageRepo) UnitsFor(branchID, typeID int64, kind string) ([]*entity.StorageUnit, error) {
	query := `
		SELECT id, branch_id, product_type_id, kind, capacity_volume, capacity_weight, restock_level
		FROM storage_units
		WHERE branch_id = $1 AND product_type_id = $2
		  AND ($3 = '' OR kind = $3)
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, branchID, typeID, kind)
	if err != nil {
		return nil, fmt.Errorf("units for: %w", err)
	}
	defer rows.Close()

	var out []*entity.StorageUnit
	for rows.Next() {
		var u entity.StorageUnit
		if err := rows.Scan(&u.ID, &u.BranchID, &u.ProductTypeID, &u.Kind,
			&u.CapacityVolume, &u.CapacityWeight, &u.RestockLevel); err != nil {
			return nil, fmt.Errorf("scan storage unit: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Capacity suma la capacidad de las unidades de la sucursal/tipo.
func (r *StorageRepo) Capacity(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	query := `
		SELECT COALESCE(SUM(capacity_volume), 0), COALESCE(SUM(capacity_weight), 0)
		FROM storage_units
		WHERE branch_id = $1 AND product_type_id = $2
		  AND ($3 = '' OR kind = $3)`
	var t repository.CapacityTotals
	err := r.q.QueryRow(context.Background(), query, branchID, typeID, kind).Scan(&t.Volume, &t.Weight)
	if err != nil {
		return repository.CapacityTotals{}, fmt.Errorf("capacity: %w", err)
	}
	return t, nil
}

// Occupied suma cantidad × huella del producto sobre las ocupaciones de las
// unidades de la sucursal/tipo.
func (r *StorageRepo) Occupied(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(o.quantity * p.package_volume), 0),
			COALESCE(SUM(o.quantity * p.package_weight), 0)
		FROM occupancies o
		JOIN storage_units u ON u.id = o.unit_id
		JOIN products p ON p.id = o.product_id
		WHERE u.branch_id = $1 AND u.product_type_id = $2
		  AND ($3 = '' OR u.kind = $3)`
	var t repository.CapacityTotals
	err := r.q.QueryRow(context.Background(), query, branchID, typeID, kind).Scan(&t.Volume, &t.Weight)
	if err != nil {
		return repository.CapacityTotals{}, fmt.Errorf("occupied: %w", err)
	}
	return t, nil
}

// UnitOccupied calcula el volumen y peso ocupados de una sola unidad.
func (r *StorageRepo) UnitOccupied(unitID int64) (repository.CapacityTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(o.quantity * p.package_volume), 0),
			COALESCE(SUM(o.quantity * p.package_weight), 0)
		FROM occupancies o
		JOIN products p ON p.id = o.product_id
		WHERE o.unit_id = $1`
	var t repository.CapacityTotals
	err := r.q.QueryRow(context.Background(), query, unitID).Scan(&t.Volume, &t.Weight)
	if err != nil {
		return repository.CapacityTotals{}, fmt.Errorf("unit occupied: %w", err)
	}
	return t, nil
}

// QuantityOnHand suma la cantidad de un producto en las unidades de la
// sucursal, restringida por clase (kind vacío = bodega + estante).
func (r *StorageRepo) QuantityOnHand(branchID, productID int64, kind string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(o.quantity), 0)
		FROM occupancies o
		JOIN storage_units u ON u.id = o.unit_id
		WHERE u.branch_id = $1 AND o.product_id = $2
		  AND ($3 = '' OR u.kind = $3)`
	var qty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, branchID, productID, kind).Scan(&qty)
	if err != nil {
		return decimal.Zero, fmt.Errorf("quantity on hand: %w", err)
	}
	return qty, nil
}

// GetOccupancyForUpdate lee la fila de ocupación bloqueándola para update;
// si no existe devuelve una fila en cero (se materializa al Upsert).
func (r *StorageRepo) GetOccupancyForUpdate(unitID, productID int64) (*entity.Occupancy, error) {
	query := `
		SELECT unit_id, product_id, quantity, updated_at
		FROM occupancies WHERE unit_id = $1 AND product_id = $2
		FOR UPDATE`
	var o entity.Occupancy
	err := r.q.QueryRow(context.Background(), query, unitID, productID).Scan(
		&o.UnitID, &o.ProductID, &o.Quantity, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Occupancy{
				UnitID: unitID, ProductID: productID,
				Quantity: decimal.Zero, UpdatedAt: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("get occupancy for update: %w", err)
	}
	return &o, nil
}

// ShelfOccupanciesForUpdate bloquea y devuelve las ocupaciones del producto
// en los estantes de la sucursal, ordenadas por unidad.
func (r *StorageRepo) ShelfOccupanciesForUpdate(branchID, productID int64) ([]*entity.Occupancy, error) {
	query := `
		SELECT o.unit_id, o.product_id, o.quantity, o.updated_at
		FROM occupancies o
		JOIN storage_units u ON u.id = o.unit_id
		WHERE u.branch_id = $1 AND o.product_id = $2 AND u.kind = $3
		ORDER BY o.unit_id
		FOR UPDATE OF o`
	rows, err := r.q.Query(context.Background(), query, branchID, productID, entity.UnitKindShelf)
	if err != nil {
		return nil, fmt.Errorf("shelf occupancies for update: %w", err)
	}
	defer rows.Close()

	var out []*entity.Occupancy
	for rows.Next() {
		var o entity.Occupancy
		if err := rows.Scan(&o.UnitID, &o.ProductID, &o.Quantity, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// UpsertOccupancy inserta o actualiza la fila de ocupación.
func (r *StorageRepo) UpsertOccupancy(occ *entity.Occupancy) error {
	query := `
		INSERT INTO occupancies (unit_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (unit_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		occ.UnitID, occ.ProductID, occ.Quantity, occ.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert occupancy: %w", err)
	}
	return nil
}
