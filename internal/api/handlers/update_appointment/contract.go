package update_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
