package create_appointment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest checks every field constraint and returns an
// aggregated ValidationError listing all violations, or nil.
func validateRequest(req *Request, now time.Time) error {
	ve := &ValidationError{}

	name := strings.TrimSpace(req.CustomerName)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		ve.add("customerName", fmt.Sprintf("must be between %d and %d characters",
			domain.MinCustomerNameLength, domain.MaxCustomerNameLength))
	}

	if !emailPattern.MatchString(req.Email) {
		ve.add("email", "must be a valid email address")
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < domain.MinPhoneLength || len(phone) > domain.MaxPhoneLength {
		ve.add("phone", fmt.Sprintf("must be between %d and %d characters",
			domain.MinPhoneLength, domain.MaxPhoneLength))
	}

	if req.VehicleMake != nil && len(*req.VehicleMake) > domain.MaxVehicleMakeLength {
		ve.add("vehicleMake", fmt.Sprintf("must be at most %d characters", domain.MaxVehicleMakeLength))
	}
	if req.VehicleModel != nil && len(*req.VehicleModel) > domain.MaxVehicleModelLength {
		ve.add("vehicleModel", fmt.Sprintf("must be at most %d characters", domain.MaxVehicleModelLength))
	}
	if req.VehicleYear != nil {
		maxYear := now.Year() + 1
		if *req.VehicleYear < domain.MinVehicleYear || *req.VehicleYear > maxYear {
			ve.add("vehicleYear", fmt.Sprintf("must be between %d and %d", domain.MinVehicleYear, maxYear))
		}
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		ve.add("serviceType", "is required")
	}

	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes) {
		ve.add("duration", fmt.Sprintf("must be between %d and %d minutes",
			domain.MinDurationMinutes, domain.MaxDurationMinutes))
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		ve.add("notes", fmt.Sprintf("must be at most %d characters", domain.MaxNotesLength))
	}

	validateSchedule(req, now, ve)

	return ve.orNil()
}

// validateSchedule checks the date/time pair: the date must be strictly
// in the future and the time must be one of the weekday's generated slots.
func validateSchedule(req *Request, now time.Time, ve *ValidationError) {
	if req.Date.IsZero() {
		ve.add("appointmentDate", "is required")
		return
	}

	if !isDateInFuture(req.Date, now) {
		ve.add("appointmentDate", "must be a future date")
		return
	}

	if _, open := domain.HoursForDate(req.Date); !open {
		ve.add("appointmentDate", "the shop is closed on this date")
		return
	}

	if !req.StartTime.Valid() {
		ve.add("appointmentTime", "is required")
		return
	}

	if !domain.SlotExists(req.Date, req.StartTime) {
		ve.add("appointmentTime", "is not a bookable time for this date")
	}
}

// isDateInFuture compares calendar dates only; booking for today is
// rejected along with past dates.
func isDateInFuture(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.After(nowOnly)
}
