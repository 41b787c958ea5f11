package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/me/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), claims.AccountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /me/vehicles - Invalid input: account_id=%s, error=%v", claims.AccountID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /me/vehicles - Failed to create vehicle: account_id=%s, error=%v",
				claims.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /me/vehicles - Vehicle created: vehicle_id=%s, account_id=%s", result.ID, claims.AccountID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
