package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es la factura emitida al confirmar una venta.
type Invoice struct {
	ID         int64
	CustomerID int64
	BranchID   int64
	Date       time.Time
	Total      decimal.Decimal
	Lines      []InvoiceLine
}

// InvoiceLine es una línea de detalle de la factura. El motor de ventas
// confirma ventas de una sola línea; el modelo admite varias. UnitPrice
// congela el precio del término de venta al momento de la venta.
type InvoiceLine struct {
	InvoiceID int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
