package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, supplier_id, branch_id, product_id, quantity, agreed_price,
	expected_date, status, delivered_at, quality_rating, created_at`

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.SupplierID, &o.BranchID, &o.ProductID, &o.Quantity, &o.AgreedPrice,
		&o.ExpectedDate, &o.Status, &o.DeliveredAt, &o.QualityRating, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserta una orden de compra (estado inicial PENDIENTE).
func (r *OrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders
			(id, supplier_id, branch_id, product_id, quantity, agreed_price,
			 expected_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.BranchID, order.ProductID,
		order.Quantity, order.AgreedPrice, order.ExpectedDate,
		order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por id; nil si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// GetForUpdate obtiene la orden bloqueando su fila (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	return o, nil
}

// MarkDelivered registra la transición PENDIENTE -> ENTREGADA con fecha y
// calificación.
func (r *OrderRepo) MarkDelivered(id int64, at time.Time, rating string) error {
	query := `
		UPDATE purchase_orders
		SET status = $1, delivered_at = $2, quality_rating = $3
		WHERE id = $4`
	_, err := r.q.Exec(context.Background(), query,
		entity.OrderStatusDelivered, at, nullIfEmpty(rating), id)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// List devuelve todas las órdenes ordenadas por id.
func (r *OrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
