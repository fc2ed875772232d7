package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
}
