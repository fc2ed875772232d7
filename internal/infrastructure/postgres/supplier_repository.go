package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create inserta un proveedor. El NIT tiene constraint único.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `INSERT INTO suppliers (id, nit, name) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.NIT, supplier.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id; nil si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT id, nit, name FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.NIT, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve todos los proveedores ordenados por id.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT id, nit, name FROM suppliers ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.NIT, &s.Name); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// AddProduct registra la relación Provee (upsert del precio de lista).
func (r *SupplierRepo) AddProduct(link *entity.SupplierProduct) error {
	query := `
		INSERT INTO supplier_products (supplier_id, product_id, list_price)
		VALUES ($1, $2, $3)
		ON CONFLICT (supplier_id, product_id)
		DO UPDATE SET list_price = EXCLUDED.list_price`
	_, err := r.q.Exec(context.Background(), query,
		link.SupplierID, link.ProductID, link.ListPrice)
	if err != nil {
		return fmt.Errorf("add supplier product: %w", err)
	}
	return nil
}

// Supplies responde si el proveedor provee el producto.
func (r *SupplierRepo) Supplies(supplierID, productID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM supplier_products
			WHERE supplier_id = $1 AND product_id = $2
		)`
	var ok bool
	err := r.q.QueryRow(context.Background(), query, supplierID, productID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("supplier supplies: %w", err)
	}
	return ok, nil
}
