package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// UseCase computes the open booking slots for a calendar date:
// the generated slot list for the weekday's business hours minus the
// start times already taken by non-cancelled appointments.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute returns the available slots for the requested date.
// Closed weekdays and dates in the past yield an empty list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, no slots", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []types.TimeOfDay{}}, nil
	}

	slots := domain.SlotsForDate(req.Date)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: shop closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: slots}, nil
	}

	booked, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	available := domain.SubtractBooked(slots, booked)

	uc.logger.Info("GetAvailableSlots: %d of %d slots open on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}

// isDateInPast compares calendar dates only, ignoring the time component.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
