package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest solicitud de una orden de compra a un proveedor.
type PlaceOrderRequest struct {
	SupplierID   int64           `json:"supplier_id"`
	BranchID     int64           `json:"branch_id"`
	ProductID    int64           `json:"product_id"`
	AgreedPrice  decimal.Decimal `json:"agreed_price"`
	ExpectedDate time.Time       `json:"expected_date"`
}

// PurchaseOrderResponse orden de compra registrada.
type PurchaseOrderResponse struct {
	ID           int64           `json:"id"`
	SupplierID   int64           `json:"supplier_id"`
	BranchID     int64           `json:"branch_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	AgreedPrice  decimal.Decimal `json:"agreed_price"`
	ExpectedDate time.Time       `json:"expected_date"`
	Status       string          `json:"status"`
}

// RecordArrivalRequest notificación de llegada de un pedido.
type RecordArrivalRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Rating   string          `json:"rating"`
}

// ArrivalResult resultado de conciliar la llegada de un pedido.
// Overflow indica que ninguna bodega tenía capacidad libre suficiente:
// la orden queda ENTREGADA de todos modos y el inventario no se aumenta.
type ArrivalResult struct {
	OrderID          int64           `json:"order_id"`
	AlreadyDelivered bool            `json:"already_delivered"`
	StockedUnitID    *int64          `json:"stocked_unit_id,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	Overflow         bool            `json:"overflow"`
}
