package delete_vehicle

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID = "invalid vehicle ID"
	msgNotFound         = "vehicle not found"
	msgForbidden        = "access denied"
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

// Handle DELETE /api/v1/me/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("DELETE /me/vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	err = h.service.Delete(r.Context(), vehicleID, claims.AccountID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /me/vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("DELETE /me/vehicles/{id} - Access denied: vehicle_id=%s, account_id=%s",
				vehicleID, claims.AccountID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /me/vehicles/{id} - Failed to delete vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /me/vehicles/{id} - Vehicle deleted: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
