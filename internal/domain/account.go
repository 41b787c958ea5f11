package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole separates customer self-service from back-office access.
type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleAdmin    AccountRole = "admin"
)

// Valid reports whether the role is a defined value.
func (r AccountRole) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Account is an authenticated identity. Deleting or deactivating an
// account never cascades to appointments; their contact snapshot stands
// on its own.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         AccountRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account has back-office access.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
