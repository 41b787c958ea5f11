package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when the caller does not own the appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment is past the point
	// where a customer may cancel it.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrSlotConflict is returned when an edit moves the appointment onto
	// a slot held by another active appointment.
	ErrSlotConflict = errors.New("slot already taken")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
