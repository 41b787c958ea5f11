package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	accountRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/account"
	appointmentRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/appointment"
	"github.com/m-ilin/PAG-AppointmentService/pkg/ptr"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// UseCase creates a new appointment: aggregated field validation, then an
// availability re-check and the insert inside one serializable transaction
// so two concurrent submissions for the same slot cannot both pass the check.
type UseCase struct {
	appointmentRepo AppointmentRepository
	accountRepo     AccountRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	accountRepo AccountRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		accountRepo:     accountRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow and returns the persisted appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%q date=%s time=%s authenticated=%t",
		req.ServiceType, req.Date.Format(domain.DateFormat), req.StartTime, req.AccountID != nil)

	now := uc.timeProvider.Now()

	// Authenticated callers get contact fields pre-filled from the
	// account profile; anything submitted in the body wins.
	if req.AccountID != nil {
		uc.prefillFromAccount(ctx, req)
	}

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	duration := ptr.Deref(req.DurationMinutes, domain.DefaultDurationMinutes)

	appt := &domain.Appointment{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		VehicleYear:     req.VehicleYear,
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		ServiceType:     strings.TrimSpace(req.ServiceType),
		AppointmentDate: req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: duration,
		Notes:           req.Notes,
		Status:          domain.StatusPending,
		AccountID:       req.AccountID,
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-check availability with the day's rows locked; the slot may
		// have been taken between the client's availability query and now.
		booked, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments for %s: %v",
				req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		available := domain.SubtractBooked(domain.SlotsForDate(req.Date), booked)
		if !containsSlot(available, req.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s on %s no longer available",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		appt = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s date=%s time=%s",
		appt.ID, appt.AppointmentDate.Format(domain.DateFormat), appt.StartTime)

	return &Response{
		ID:              appt.ID,
		CustomerName:    appt.CustomerName,
		Email:           appt.Email,
		Phone:           appt.Phone,
		VehicleYear:     appt.VehicleYear,
		VehicleMake:     appt.VehicleMake,
		VehicleModel:    appt.VehicleModel,
		ServiceType:     appt.ServiceType,
		Date:            appt.AppointmentDate,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Notes:           appt.Notes,
		Status:          string(appt.Status),
		AccountID:       appt.AccountID,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}, nil
}

// prefillFromAccount fills empty contact fields from the linked account.
// A missing account downgrades the booking to anonymous instead of
// failing it.
func (uc *UseCase) prefillFromAccount(ctx context.Context, req *Request) {
	acc, err := uc.accountRepo.GetByID(ctx, *req.AccountID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			uc.logger.Warn("CreateAppointment: account %s not found, booking as anonymous", *req.AccountID)
			req.AccountID = nil
			return
		}
		uc.logger.Warn("CreateAppointment: failed to load account %s: %v", *req.AccountID, err)
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		req.CustomerName = acc.Name
	}
	if strings.TrimSpace(req.Email) == "" {
		req.Email = acc.Email
	}
	if strings.TrimSpace(req.Phone) == "" {
		req.Phone = acc.Phone
	}
}

func containsSlot(available []types.TimeOfDay, start types.TimeOfDay) bool {
	for _, slot := range available {
		if slot == start {
			return true
		}
	}
	return false
}
