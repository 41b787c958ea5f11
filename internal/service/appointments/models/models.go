package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

var (
	// ErrInvalidStatus is returned for a status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate is returned for a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned for a time that does not parse.
	ErrInvalidTime = errors.New("invalid time")
)

// Request models

// ListAppointmentsRequest filters the back-office appointment listing.
type ListAppointmentsRequest struct {
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"
	EndDate   *string `json:"endDate,omitempty"`
	Page      int     `json:"page"`
	PageSize  int     `json:"pageSize"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AdminAppointmentsFilter, error) {
	filter := domain.AdminAppointmentsFilter{
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = domain.DefaultPageSize
	}
	if filter.PageSize > domain.MaxPageSize {
		filter.PageSize = domain.MaxPageSize
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// UpdateStatusRequest moves an appointment to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAppointmentRequest edits appointment fields in place. Nil fields
// keep their current values.
type UpdateAppointmentRequest struct {
	CustomerName    *string `json:"customerName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	VehicleYear     *int    `json:"vehicleYear,omitempty"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	ServiceType     *string `json:"serviceType,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"` // "2025-10-15"
	StartTime       *string `json:"startTime,omitempty"`       // "8:00 AM" or "08:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// Response models

// AppointmentResponse is the appointment DTO returned by the service.
type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerName    string     `json:"customerName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	VehicleYear     *int       `json:"vehicleYear,omitempty"`
	VehicleMake     *string    `json:"vehicleMake,omitempty"`
	VehicleModel    *string    `json:"vehicleModel,omitempty"`
	ServiceType     string     `json:"serviceType"`
	AppointmentDate string     `json:"appointmentDate"` // "2025-10-15"
	StartTime       string     `json:"startTime"`       // "8:00 AM"
	DurationMinutes int        `json:"durationMinutes"`
	Notes           *string    `json:"notes,omitempty"`
	Status          string     `json:"status"`
	AccountID       *uuid.UUID `json:"accountId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AppointmentListResponse is a plain list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// AppointmentPageResponse is a paginated appointment listing.
type AppointmentPageResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

// Converters

// FromDomainAppointment converts a domain appointment into a DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		Email:           a.Email,
		Phone:           a.Phone,
		VehicleYear:     a.VehicleYear,
		VehicleMake:     a.VehicleMake,
		VehicleModel:    a.VehicleModel,
		ServiceType:     a.ServiceType,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.Label(),
		DurationMinutes: a.DurationMinutes,
		Notes:           a.Notes,
		Status:          string(a.Status),
		AccountID:       a.AccountID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain appointments.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}
	return resp
}

// FromDomainAppointmentPage converts a page of domain appointments.
func FromDomainAppointmentPage(appointments []*domain.Appointment, total, page, pageSize int) *AppointmentPageResponse {
	list := FromDomainAppointmentList(appointments)
	return &AppointmentPageResponse{
		Appointments: list.Appointments,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
}

// ToDomainStatus converts a string into an AppointmentStatus with validation.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ParseStartTime parses a boundary time value, accepting both the 12-hour
// label and the 24-hour form.
func ParseStartTime(value string) (types.TimeOfDay, error) {
	t, err := types.Parse(value)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return t, nil
}
