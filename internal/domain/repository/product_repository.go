package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
