package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTerm es la relación Vende: condiciones comerciales y de reposición
// de un producto en una sucursal. Debe existir antes de cualquier venta o
// decisión de reorden para ese par (sucursal, producto).
type SalesTerm struct {
	BranchID     int64
	ProductID    int64
	Price        decimal.Decimal // precio unitario de venta
	ReorderLevel decimal.Decimal // nivel de reorden: en o por debajo se justifica pedir
	RestockQty   decimal.Decimal // cantidad fija de recompra
	UpdatedAt    time.Time
}
