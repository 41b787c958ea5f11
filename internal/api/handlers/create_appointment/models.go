package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	createAppointment "github.com/m-ilin/PAG-AppointmentService/internal/usecase/create_appointment"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model. The time accepts both the
// 12-hour label shown on the site ("8:00 AM") and the 24-hour form.
type CreateAppointmentRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	VehicleYear  *int    `json:"vehicleYear,omitempty"`
	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`

	ServiceType     string  `json:"serviceType"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string  `json:"appointmentTime"` // "8:00 AM"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case request.
// Unparseable date and time values are passed through as their zero and
// invalid forms so the use case reports them alongside every other field
// violation instead of failing fast here.
func (r *CreateAppointmentRequest) ToUseCaseRequest(accountID *uuid.UUID) *createAppointment.Request {
	req := &createAppointment.Request{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		VehicleYear:     r.VehicleYear,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		ServiceType:     r.ServiceType,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		AccountID:       accountID,
	}

	if date, err := time.Parse(domain.DateFormat, r.AppointmentDate); err == nil {
		req.Date = date
	}

	req.StartTime = types.TimeOfDay(-1)
	if start, err := types.Parse(r.AppointmentTime); err == nil {
		req.StartTime = start
	}

	return req
}

// AppointmentResponse HTTP response model.
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	VehicleYear     *int      `json:"vehicleYear,omitempty"`
	VehicleMake     *string   `json:"vehicleMake,omitempty"`
	VehicleModel    *string   `json:"vehicleModel,omitempty"`
	ServiceType     string    `json:"serviceType"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"` // "8:00 AM"
	DurationMinutes int       `json:"durationMinutes"`
	Notes           *string   `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		VehicleYear:     resp.VehicleYear,
		VehicleMake:     resp.VehicleMake,
		VehicleModel:    resp.VehicleModel,
		ServiceType:     resp.ServiceType,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.Label(),
		DurationMinutes: resp.DurationMinutes,
		Notes:           resp.Notes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
	}
}
