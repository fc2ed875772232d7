package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSalesTermRequest alta o actualización de la relación Vende.
type RegisterSalesTermRequest struct {
	BranchID     int64           `json:"branch_id"`
	ProductID    int64           `json:"product_id"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	RestockQty   decimal.Decimal `json:"restock_qty"`
}

// SellRequest venta de un producto a un cliente en una sucursal.
type SellRequest struct {
	BranchID   int64           `json:"branch_id"`
	ProductID  int64           `json:"product_id"`
	CustomerID int64           `json:"customer_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// InvoiceResponse factura confirmada.
type InvoiceResponse struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"customer_id"`
	BranchID   int64                 `json:"branch_id"`
	Date       time.Time             `json:"date"`
	Total      decimal.Decimal       `json:"total"`
	Lines      []InvoiceLineResponse `json:"lines"`
}

// InvoiceLineResponse línea de detalle de la factura.
type InvoiceLineResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
