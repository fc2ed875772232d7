package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/superandes-api/internal/application/replenishment"
	"github.com/jhoicas/superandes-api/internal/application/sales"
	"github.com/jhoicas/superandes-api/internal/application/storage"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de los casos de uso.
var _ storage.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ replenishment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL
// SERIALIZABLE. Los bloqueos de fila serializan a los escritores del mismo
// par (sucursal, producto); el aislamiento serializable cubre además los
// agregados de capacidad que esos bloqueos no alcanzan, como dos llegadas
// de órdenes distintas leyendo el espacio libre de la misma bodega. Los
// conflictos de serialización y deadlocks se traducen a
// domain.TransientFailure para que el caller reintente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// engineTxOptions aislamiento de toda transacción del motor.
var engineTxOptions = pgx.TxOptions{IsoLevel: pgx.Serializable}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.BeginTx(ctx, engineTxOptions)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		if isTransient(err) {
			return domain.TransientFailure(err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isTransient(err) {
			return domain.TransientFailure(err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia una transacción con los repos del Storage Ledger.
func (r *TxRunner) Run(ctx context.Context, fn func(
	storageRepo repository.StorageRepository,
	termRepo repository.SalesTermRepository,
	seq repository.Sequence,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewStorageRepository(q), NewSalesTermRepository(q), NewSequence(q))
	})
}

// RunSale inicia una transacción con los repos de la venta.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	termRepo repository.SalesTermRepository,
	productRepo repository.ProductRepository,
	storageRepo repository.StorageRepository,
	invoiceRepo repository.InvoiceRepository,
	seq repository.Sequence,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewSalesTermRepository(q),
			NewProductRepository(q),
			NewStorageRepository(q),
			NewInvoiceRepository(q),
			NewSequence(q),
		)
	})
}

// RunReplenishment inicia una transacción con los repos de la reposición.
func (r *TxRunner) RunReplenishment(ctx context.Context, fn func(
	termRepo repository.SalesTermRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	storageRepo repository.StorageRepository,
	orderRepo repository.OrderRepository,
	seq repository.Sequence,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewSalesTermRepository(q),
			NewSupplierRepository(q),
			NewProductRepository(q),
			NewStorageRepository(q),
			NewOrderRepository(q),
			NewSequence(q),
		)
	})
}
