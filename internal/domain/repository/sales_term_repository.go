package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// SalesTermRepository puerto de persistencia de la relación Vende.
type SalesTermRepository interface {
	// Upsert registra o actualiza los términos de venta (idempotente).
	Upsert(term *entity.SalesTerm) error
	Get(branchID, productID int64) (*entity.SalesTerm, error)
	// GetForUpdate bloquea la fila del término (SELECT FOR UPDATE); es el
	// punto de serialización de ventas y reordenes concurrentes sobre el
	// mismo par (sucursal, producto).
	GetForUpdate(branchID, productID int64) (*entity.SalesTerm, error)
	// TypeOffered responde si la sucursal vende al menos un producto del
	// tipo dado (precondición para crear unidades de almacenamiento).
	TypeOffered(branchID, typeID int64) (bool, error)
}
