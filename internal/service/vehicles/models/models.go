package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

// Request models

// CreateVehicleRequest adds a vehicle to the caller's garage.
type CreateVehicleRequest struct {
	Year         int     `json:"year"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	LicensePlate *string `json:"licensePlate,omitempty"`
}

// UpdateVehicleRequest edits vehicle fields. Nil fields keep their
// current values.
type UpdateVehicleRequest struct {
	Year         *int    `json:"year,omitempty"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
}

// Response models

// VehicleResponse is the vehicle DTO.
type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Year         int       `json:"year"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	LicensePlate *string   `json:"licensePlate,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VehicleListResponse is the caller's garage.
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomainVehicle converts a domain vehicle into a DTO.
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{
		ID:           v.ID,
		Year:         v.Year,
		Make:         v.Make,
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromDomainVehicleList converts a slice of domain vehicles.
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		if dto := FromDomainVehicle(v); dto != nil {
			resp.Vehicles = append(resp.Vehicles, *dto)
		}
	}
	return resp
}
