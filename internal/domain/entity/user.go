package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema; es el actor de cada movimiento.
// Nunca se elimina mientras esté referenciado por el log.
type User struct {
	ID           string
	Username     string // único
	Email        string // opcional, único si existe
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, bodeguero, vendedor
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
