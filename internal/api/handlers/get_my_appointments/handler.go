package get_my_appointments

import (
	"net/http"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	result, err := h.service.ListByAccount(r.Context(), claims.AccountID)
	if err != nil {
		h.logger.Error("GET /me/appointments - Failed to list appointments: account_id=%s, error=%v",
			claims.AccountID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/appointments - Appointments retrieved: account_id=%s, count=%d",
		claims.AccountID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
