package get_vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

type VehicleService interface {
	List(ctx context.Context, accountID uuid.UUID) (*models.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
