package inbox

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// QuoteRepository is the quote request storage interface.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.QuoteRequest) (*domain.QuoteRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error)
	ListWithFilter(ctx context.Context, filter domain.InboxFilter) ([]*domain.QuoteRequest, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuoteStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactRepository is the contact message storage interface.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	ListWithFilter(ctx context.Context, filter domain.InboxFilter) ([]*domain.ContactMessage, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
