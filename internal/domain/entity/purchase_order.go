package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. PENDIENTE es el único estado inicial;
// la única transición es PENDIENTE → ENTREGADA (terminal), al registrar
// la llegada del pedido.
const (
	OrderStatusPending   = "PENDIENTE"
	OrderStatusDelivered = "ENTREGADA"
)

// PurchaseOrder es una orden de compra de una sucursal a un proveedor.
// Se muta exactamente una vez, a su llegada.
type PurchaseOrder struct {
	ID            int64
	SupplierID    int64
	BranchID      int64
	ProductID     int64
	Quantity      decimal.Decimal // cantidad de recompra del término de venta
	AgreedPrice   decimal.Decimal // precio unitario pactado
	ExpectedDate  time.Time
	Status        string // PENDIENTE | ENTREGADA
	DeliveredAt   *time.Time
	QualityRating *string // calificación asignada al recibir
	CreatedAt     time.Time
}
