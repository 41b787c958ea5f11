package delete_quote

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
)

const (
	msgInvalidQuoteID = "invalid quote ID"
	msgNotFound       = "quote request not found"
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

// Handle DELETE /api/v1/admin/quotes/{quoteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteID, err := uuid.Parse(vars["quoteId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/quotes/{id} - Invalid quote ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	err = h.service.DeleteQuote(r.Context(), quoteID)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrQuoteNotFound):
			h.logger.Warn("DELETE /admin/quotes/{id} - Quote not found: quote_id=%s", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/quotes/{id} - Failed to delete quote: quote_id=%s, error=%v",
				quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/quotes/{id} - Quote deleted: quote_id=%s", quoteID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
