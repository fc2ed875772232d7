package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

// ProductTypeRepository puerto de persistencia para tipos de producto.
type ProductTypeRepository interface {
	Create(productType *entity.ProductType) error
	GetByID(id int64) (*entity.ProductType, error)
	List() ([]*entity.ProductType, error)
}
