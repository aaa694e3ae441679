package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleCliente  = "cliente"
)

// User representa un usuario del sistema (administrador, vendedor o cliente de la panadería).
// Los clientes son a la vez destinatarios de tarifas y de asignaciones de stock.
type User struct {
	ID           string
	Name         string
	Role         string // admin, vendedor, cliente
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
