package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle belongs to a customer account and pre-fills booking forms.
type Vehicle struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Year         int
	Make         string
	Model        string
	LicensePlate *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwnedBy reports whether the vehicle belongs to the given account.
func (v *Vehicle) IsOwnedBy(accountID uuid.UUID) bool {
	return v.AccountID == accountID
}
