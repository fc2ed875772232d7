package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// BranchRepository puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id int64) (*entity.Branch, error)
	List() ([]*entity.Branch, error)
}
