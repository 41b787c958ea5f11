package update_quote_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

const (
	msgInvalidQuoteID     = "invalid quote ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "invalid quote status"
	msgNotFound           = "quote request not found"
)

type Handler struct {
	service InboxService
	logger  Logger
}

func NewHandler(service InboxService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/quotes/{quoteId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteID, err := uuid.Parse(vars["quoteId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/quotes/{id}/status - Invalid quote ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/quotes/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetQuoteStatus(r.Context(), quoteID, &req)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrQuoteNotFound):
			h.logger.Warn("PATCH /admin/quotes/{id}/status - Quote not found: quote_id=%s", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inbox.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/quotes/{id}/status - Invalid status: quote_id=%s, status=%s",
				quoteID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/quotes/{id}/status - Failed to update status: quote_id=%s, error=%v",
				quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/quotes/{id}/status - Status updated: quote_id=%s, status=%s", quoteID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
