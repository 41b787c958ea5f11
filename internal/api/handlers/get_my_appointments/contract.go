package get_my_appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
