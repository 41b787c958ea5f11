package cancel_appointment

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id uuid.UUID, accountID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
