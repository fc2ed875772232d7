package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occupancy es la relación (unidad de almacenamiento, producto) → cantidad
// actualmente almacenada. Se crea implícitamente al primer almacenaje y
// nunca queda negativa.
type Occupancy struct {
	UnitID    int64
	ProductID int64
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
