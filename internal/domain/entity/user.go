package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario de la tienda. Para el motor de órdenes es solo
// una verificación de existencia: ninguna operación del motor lo muta.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
