package entity

import "time"

// Roles de usuario de la API.
const (
	RoleAdmin   = "admin"
	RoleManager = "gerente"
	RoleCashier = "cajero"
)

// User es un usuario de la API (autenticación de las rutas mutadoras).
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
