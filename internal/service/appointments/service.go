package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	appointmentRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/appointment"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/appointments/models"
)

// Service manages appointment lifecycle and back-office operations.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates a new appointment service.
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches a single appointment. Back-office only; route access is
// enforced by middleware.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List returns appointments for the back office with optional status and
// date-range filtering, newest first, paginated.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentPageResponse, error) {
	s.logger.Info("List: fetching appointments page=%d pageSize=%d", req.Page, req.PageSize)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, total, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d appointments", len(appointments), total)
	return models.FromDomainAppointmentPage(appointments, total, filter.Page, filter.PageSize), nil
}

// ListByAccount returns the appointment history linked to the given account.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByAccount: fetching appointments for account=%s", accountID)

	appointments, err := s.appointmentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("ListByAccount: repository error for account=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: ListByAccount - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancels an appointment on behalf of its owning customer.
// The caller must own the appointment, and the appointment must still be
// pending or confirmed.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, accountID uuid.UUID) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by account=%s", id, accountID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.IsOwnedBy(accountID) {
		s.logger.Warn("Cancel: access denied for account=%s to appointment id=%s", accountID, id)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelledByCustomer() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// SetStatus moves an appointment to any status in the enumeration.
// Back-office only; no transition restrictions apply to staff.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("SetStatus: updating appointment id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("SetStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("SetStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetStatus: fetch after update failed for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: successfully updated appointment id=%s to status=%s", id, status)
	return models.FromDomainAppointment(appt), nil
}

// Update edits appointment fields in place. Staff corrections bypass the
// booking-time availability check; the slot-conflict constraint still holds
// when the schedule fields collide with an active appointment.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: editing appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyUpdate(appt, req); err != nil {
		s.logger.Warn("Update: invalid request for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			s.logger.Warn("Update: slot conflict for appointment id=%s", id)
			return nil, ErrSlotConflict
		}
		s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: fetch after update failed for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)
	return models.FromDomainAppointment(updated), nil
}

// Delete permanently removes an appointment. Back-office only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// applyUpdate overlays non-nil request fields onto the appointment.
func applyUpdate(appt *domain.Appointment, req *models.UpdateAppointmentRequest) error {
	if req.CustomerName != nil {
		appt.CustomerName = *req.CustomerName
	}
	if req.Email != nil {
		appt.Email = *req.Email
	}
	if req.Phone != nil {
		appt.Phone = *req.Phone
	}
	if req.VehicleYear != nil {
		appt.VehicleYear = req.VehicleYear
	}
	if req.VehicleMake != nil {
		appt.VehicleMake = req.VehicleMake
	}
	if req.VehicleModel != nil {
		appt.VehicleModel = req.VehicleModel
	}
	if req.ServiceType != nil {
		appt.ServiceType = *req.ServiceType
	}
	if req.AppointmentDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.AppointmentDate)
		if err != nil {
			return models.ErrInvalidDate
		}
		appt.AppointmentDate = date
	}
	if req.StartTime != nil {
		start, err := models.ParseStartTime(*req.StartTime)
		if err != nil {
			return err
		}
		appt.StartTime = start
	}
	if req.DurationMinutes != nil {
		appt.DurationMinutes = *req.DurationMinutes
	}
	if req.Notes != nil {
		appt.Notes = req.Notes
	}
	return nil
}
