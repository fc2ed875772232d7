package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios de la API.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
}
