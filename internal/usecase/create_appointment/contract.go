package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// AppointmentRepository is the slice of the storage layer this use case needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDate returns all slot-occupying appointments on the date;
	// inside a transaction the rows are locked FOR UPDATE.
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// AccountRepository resolves the optional authenticated customer for
// contact pre-fill and the account back-reference.
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// TransactionManager runs the availability re-check and the insert in a
// single serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time; swapped out in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf logger threaded through the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
