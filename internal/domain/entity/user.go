package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del panel de administración.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	Name         string
	Role         string // admin | vendedor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
