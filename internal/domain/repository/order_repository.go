package repository

import (
	"time"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de órdenes de compra.
type OrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la orden para la transición PENDIENTE → ENTREGADA,
	// de modo que dos notificaciones de llegada concurrentes se serialicen.
	GetForUpdate(id int64) (*entity.PurchaseOrder, error)
	MarkDelivered(id int64, at time.Time, rating string) error
	List() ([]*entity.PurchaseOrder, error)
}
