package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrAccessDenied is returned when the caller does not own the vehicle.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed vehicle data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
