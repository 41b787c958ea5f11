package create_quote

import (
	"errors"
	"net/http"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateQuote(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /quotes - Failed to create quote request: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote request created: quote_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
