package create_contact_message

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

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateMessage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /contact - Failed to create contact message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Contact message created: message_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
