package create_vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

type VehicleService interface {
	Create(ctx context.Context, accountID uuid.UUID, req *models.CreateVehicleRequest) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
