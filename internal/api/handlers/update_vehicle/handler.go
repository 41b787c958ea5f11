package update_vehicle

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

const (
	msgInvalidVehicleID   = "invalid vehicle ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "vehicle not found"
	msgForbidden          = "access denied"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("PUT /me/vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), vehicleID, claims.AccountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /me/vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("PUT /me/vehicles/{id} - Access denied: vehicle_id=%s, account_id=%s",
				vehicleID, claims.AccountID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /me/vehicles/{id} - Invalid input: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /me/vehicles/{id} - Failed to update vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/vehicles/{id} - Vehicle updated: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
