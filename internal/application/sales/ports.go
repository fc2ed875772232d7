package sales

import (
	"context"

	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La validación de existencias y el
// descuento de estantes ocurren bajo la misma transacción para impedir
// que dos ventas concurrentes observen el mismo stock y ambas procedan.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		termRepo repository.SalesTermRepository,
		productRepo repository.ProductRepository,
		storageRepo repository.StorageRepository,
		invoiceRepo repository.InvoiceRepository,
		seq repository.Sequence,
	) error) error
}
