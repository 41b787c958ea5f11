package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// AppointmentRepository is the appointment storage interface consumed by the service.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AdminAppointmentsFilter) ([]*domain.Appointment, int, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
