package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether the status is one of the defined enumeration values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a single service booking at the shop.
// Contact fields are a snapshot captured at booking time; the optional
// AccountID link is a convenience index, not the source of truth.
type Appointment struct {
	ID uuid.UUID

	// Contact snapshot
	CustomerName string
	Email        string
	Phone        string

	// Optional vehicle descriptors
	VehicleYear  *int
	VehicleMake  *string
	VehicleModel *string

	ServiceType     string
	AppointmentDate time.Time
	StartTime       types.TimeOfDay
	DurationMinutes int
	Notes           *string
	Status          AppointmentStatus

	// Nullable back-reference; anonymous bookings leave it nil.
	AccountID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the appointment blocks its (date, time)
// slot. Only cancelled appointments free the slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelledByCustomer reports whether the owning customer may still
// cancel the appointment.
func (a *Appointment) CanBeCancelledByCustomer() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsOwnedBy reports whether the appointment is linked to the given account.
func (a *Appointment) IsOwnedBy(accountID uuid.UUID) bool {
	return a.AccountID != nil && *a.AccountID == accountID
}

// AdminAppointmentsFilter filters the back-office appointment listing.
type AdminAppointmentsFilter struct {
	Status    *AppointmentStatus // optional status filter
	StartDate *time.Time         // period start, inclusive
	EndDate   *time.Time         // period end, inclusive
	Page      int                // 1-based
	PageSize  int
}
