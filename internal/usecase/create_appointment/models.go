package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// Request carries a booking submission. AccountID comes from the auth
// middleware, never from the request body; it is nil for anonymous
// bookings.
type Request struct {
	CustomerName string
	Email        string
	Phone        string

	VehicleYear  *int
	VehicleMake  *string
	VehicleModel *string

	ServiceType     string
	Date            time.Time
	StartTime       types.TimeOfDay
	DurationMinutes *int // default applied when nil
	Notes           *string

	AccountID *uuid.UUID
}

// Response is the persisted appointment.
type Response struct {
	ID uuid.UUID

	CustomerName string
	Email        string
	Phone        string

	VehicleYear  *int
	VehicleMake  *string
	VehicleModel *string

	ServiceType     string
	Date            time.Time
	StartTime       types.TimeOfDay
	DurationMinutes int
	Notes           *string
	Status          string

	AccountID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}
