package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// Request models

// RegisterRequest creates a new customer account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response models

// AccountResponse is the account profile DTO. The password hash never
// leaves the service layer.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// FromDomainAccount converts a domain account into a DTO.
func FromDomainAccount(a *domain.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}
