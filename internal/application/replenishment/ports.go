package replenishment

import (
	"context"

	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda la secuencia de validación y la
// escritura final ocurren bajo la misma transacción: cualquier fallo
// aborta sin escrituras parciales.
type TxRunner interface {
	RunReplenishment(ctx context.Context, fn func(
		termRepo repository.SalesTermRepository,
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
		storageRepo repository.StorageRepository,
		orderRepo repository.OrderRepository,
		seq repository.Sequence,
	) error) error
}
