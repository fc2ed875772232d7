package entity

import "github.com/shopspring/decimal"

// Clases de unidad de almacenamiento.
const (
	UnitKindWarehouse = "BODEGA"
	UnitKindShelf     = "ESTANTE"
)

// StorageUnit es una bodega o un estante de una sucursal, dedicado a un
// tipo de producto, con capacidad fija de volumen y peso. La ocupación
// real se deriva siempre de las filas de Occupancy, nunca se cachea aquí.
type StorageUnit struct {
	ID             int64
	BranchID       int64
	ProductTypeID  int64
	Kind           string // BODEGA | ESTANTE
	CapacityVolume decimal.Decimal
	CapacityWeight decimal.Decimal
	RestockLevel   *int64 // solo estantes: nivel de reabastecimiento
}
