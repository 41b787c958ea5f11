package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	vehicleRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/vehicle"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

// Service manages customer garage vehicles.
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService creates a new vehicle service.
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Create adds a vehicle to the caller's garage.
func (s *Service) Create(ctx context.Context, accountID uuid.UUID, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: adding vehicle for account=%s", accountID)

	if err := validateVehicle(req.Year, req.Make, req.Model); err != nil {
		s.logger.Warn("Create: invalid vehicle for account=%s: %v", accountID, err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ID:           uuid.New(),
		AccountID:    accountID,
		Year:         req.Year,
		Make:         strings.TrimSpace(req.Make),
		Model:        strings.TrimSpace(req.Model),
		LicensePlate: req.LicensePlate,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error for account=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added vehicle id=%s for account=%s", created.ID, accountID)
	return models.FromDomainVehicle(created), nil
}

// List returns the caller's garage, oldest first.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("List: repository error for account=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicleList(vehicles), nil
}

// Update edits a vehicle owned by the caller.
func (s *Service) Update(ctx context.Context, id uuid.UUID, accountID uuid.UUID, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: editing vehicle id=%s by account=%s", id, accountID)

	vehicle, err := s.getOwned(ctx, id, accountID)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Make != nil {
		vehicle.Make = strings.TrimSpace(*req.Make)
	}
	if req.Model != nil {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = req.LicensePlate
	}

	if err := validateVehicle(vehicle.Year, vehicle.Make, vehicle.Model); err != nil {
		s.logger.Warn("Update: invalid vehicle id=%s: %v", id, err)
		return nil, err
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated vehicle id=%s", id)
	return models.FromDomainVehicle(vehicle), nil
}

// Delete removes a vehicle owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, accountID uuid.UUID) error {
	s.logger.Info("Delete: deleting vehicle id=%s by account=%s", id, accountID)

	if _, err := s.getOwned(ctx, id, accountID); err != nil {
		return err
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted vehicle id=%s", id)
	return nil
}

func (s *Service) getOwned(ctx context.Context, id uuid.UUID, accountID uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("vehicle id=%s not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !vehicle.IsOwnedBy(accountID) {
		s.logger.Warn("access denied for account=%s to vehicle id=%s", accountID, id)
		return nil, ErrAccessDenied
	}

	return vehicle, nil
}

func validateVehicle(year int, make, model string) error {
	currentYear := time.Now().Year()
	if year < domain.MinVehicleYear || year > currentYear+1 {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinVehicleYear, currentYear+1)
	}
	if m := strings.TrimSpace(make); m == "" || len(m) > domain.MaxVehicleMakeLength {
		return fmt.Errorf("%w: make is required and must be at most %d characters", ErrInvalidInput, domain.MaxVehicleMakeLength)
	}
	if m := strings.TrimSpace(model); m == "" || len(m) > domain.MaxVehicleModelLength {
		return fmt.Errorf("%w: model is required and must be at most %d characters", ErrInvalidInput, domain.MaxVehicleModelLength)
	}
	return nil
}
