package storage

import (
	"context"

	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad al crear unidades.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storageRepo repository.StorageRepository,
		termRepo repository.SalesTermRepository,
		seq repository.Sequence,
	) error) error
}
