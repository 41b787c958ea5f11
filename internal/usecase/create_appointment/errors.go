package create_appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotNotAvailable is returned when the requested slot is taken
	// at write time (the conflict case)
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal is returned for unexpected failures inside the use case
	ErrInternal = errors.New("create_appointment: internal error")
)

// FieldError describes one violated request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field so the client can
// render all form errors at once; validation never fails fast.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "create_appointment: validation failed: " + strings.Join(parts, "; ")
}

// add appends a field violation.
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns the error only when at least one field failed.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
