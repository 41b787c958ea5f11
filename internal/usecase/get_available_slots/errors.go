package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for a missing or malformed date
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for unexpected failures inside the use case
	ErrInternal = errors.New("get_available_slots: internal error")
)
