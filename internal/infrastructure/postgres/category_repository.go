package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta una categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por id; nil si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por id.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// ProductTypeRepo implementación de ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

// Create inserta un tipo de producto.
func (r *ProductTypeRepo) Create(productType *entity.ProductType) error {
	query := `INSERT INTO product_types (id, name, category_id) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		productType.ID, productType.Name, productType.CategoryID)
	if err != nil {
		return fmt.Errorf("create product type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de producto por id; nil si no existe.
func (r *ProductTypeRepo) GetByID(id int64) (*entity.ProductType, error) {
	query := `SELECT id, name, category_id FROM product_types WHERE id = $1`
	var t entity.ProductType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tipos de producto ordenados por id.
func (r *ProductTypeRepo) List() ([]*entity.ProductType, error) {
	query := `SELECT id, name, category_id FROM product_types ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductType
	for rows.Next() {
		var t entity.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
