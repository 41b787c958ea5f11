package get_available_slots

import (
	"context"
	"time"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// AppointmentRepository is the slice of the storage layer this use case needs.
type AppointmentRepository interface {
	// GetByDate returns all slot-occupying appointments on the date.
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
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
