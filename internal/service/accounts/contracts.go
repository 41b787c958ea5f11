package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// AccountRepository is the account storage interface consumed by the service.
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// TokenIssuer signs session tokens for authenticated accounts.
type TokenIssuer interface {
	Generate(accountID uuid.UUID, role domain.AccountRole) (string, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
