package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// CapacityTotals agrupa capacidad (o espacio ocupado) en ambas dimensiones.
type CapacityTotals struct {
	Volume decimal.Decimal
	Weight decimal.Decimal
}

// StorageRepository puerto de persistencia del Storage Ledger: unidades de
// almacenamiento y sus ocupaciones. Capacidad y ocupación son agregados que
// se recalculan desde las filas en cada lectura, dentro de la misma
// transacción que los va a usar; nunca contadores desnormalizados.
type StorageRepository interface {
	CreateUnit(unit *entity.StorageUnit) error
	GetUnit(id int64) (*entity.StorageUnit, error)
	// UnitsFor devuelve las unidades de una sucursal para un tipo de
	// producto, filtradas por clase (kind vacío = ambas), ordenadas por id.
	UnitsFor(branchID, typeID int64, kind string) ([]*entity.StorageUnit, error)

	// Capacity suma la capacidad de las unidades de la sucursal/tipo,
	// filtrando por clase si kind no es vacío.
	Capacity(branchID, typeID int64, kind string) (CapacityTotals, error)
	// Occupied suma cantidad × huella del producto sobre todas las
	// ocupaciones de las unidades de la sucursal/tipo.
	Occupied(branchID, typeID int64, kind string) (CapacityTotals, error)
	// UnitOccupied calcula el volumen y peso ocupados de una sola unidad.
	UnitOccupied(unitID int64) (CapacityTotals, error)

	// QuantityOnHand suma la cantidad de un producto en las unidades de la
	// sucursal, restringida por clase (kind vacío = bodega + estante).
	QuantityOnHand(branchID, productID int64, kind string) (decimal.Decimal, error)

	// GetOccupancyForUpdate lee (o inicializa en cero) la fila de ocupación
	// bloqueándola para update dentro de la transacción actual.
	GetOccupancyForUpdate(unitID, productID int64) (*entity.Occupancy, error)
	// ShelfOccupanciesForUpdate bloquea y devuelve las ocupaciones del
	// producto en los estantes de la sucursal, ordenadas por unidad.
	ShelfOccupanciesForUpdate(branchID, productID int64) ([]*entity.Occupancy, error)
	UpsertOccupancy(occ *entity.Occupancy) error
}
