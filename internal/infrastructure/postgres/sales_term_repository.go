package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.SalesTermRepository = (*SalesTermRepo)(nil)

// SalesTermRepo implementación de SalesTermRepository sobre PostgreSQL.
// La fila del término es el punto de serialización de ventas y reordenes
// concurrentes sobre el mismo par (sucursal, producto).
type SalesTermRepo struct {
	q Querier
}

// NewSalesTermRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesTermRepository(q Querier) *SalesTermRepo {
	return &SalesTermRepo{q: q}
}

// Upsert registra o actualiza los términos de venta.
func (r *SalesTermRepo) Upsert(term *entity.SalesTerm) error {
	query := `
		INSERT INTO sales_terms (branch_id, product_id, price, reorder_level, restock_qty, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (branch_id, product_id)
		DO UPDATE SET
			price = EXCLUDED.price,
			reorder_level = EXCLUDED.reorder_level,
			restock_qty = EXCLUDED.restock_qty,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		term.BranchID, term.ProductID, term.Price,
		term.ReorderLevel, term.RestockQty, term.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert sales term: %w", err)
	}
	return nil
}

func (r *SalesTermRepo) get(branchID, productID int64, forUpdate bool) (*entity.SalesTerm, error) {
	query := `
		SELECT branch_id, product_id, price, reorder_level, restock_qty, updated_at
		FROM sales_terms WHERE branch_id = $1 AND product_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var t entity.SalesTerm
	err := r.q.QueryRow(context.Background(), query, branchID, productID).Scan(
		&t.BranchID, &t.ProductID, &t.Price, &t.ReorderLevel, &t.RestockQty, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales term: %w", err)
	}
	return &t, nil
}

// Get obtiene los términos de venta; nil si la sucursal no vende el producto.
func (r *SalesTermRepo) Get(branchID, productID int64) (*entity.SalesTerm, error) {
	return r.get(branchID, productID, false)
}

// GetForUpdate obtiene los términos bloqueando la fila (SELECT FOR UPDATE).
func (r *SalesTermRepo) GetForUpdate(branchID, productID int64) (*entity.SalesTerm, error) {
	return r.get(branchID, productID, true)
}

// TypeOffered responde si la sucursal vende al menos un producto del tipo.
func (r *SalesTermRepo) TypeOffered(branchID, typeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM sales_terms st
			JOIN products p ON p.id = st.product_id
			WHERE st.branch_id = $1 AND p.type_id = $2
		)`
	var ok bool
	err := r.q.QueryRow(context.Background(), query, branchID, typeID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("type offered: %w", err)
	}
	return ok, nil
}
