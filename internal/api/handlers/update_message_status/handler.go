package update_message_status

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
	msgInvalidMessageID   = "invalid message ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "invalid message status"
	msgNotFound           = "contact message not found"
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

// Handle PATCH /api/v1/admin/messages/{messageId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := uuid.Parse(vars["messageId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/messages/{id}/status - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/messages/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetMessageStatus(r.Context(), messageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/messages/{id}/status - Message not found: message_id=%s", messageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inbox.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/messages/{id}/status - Invalid status: message_id=%s, status=%s",
				messageID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/messages/{id}/status - Failed to update status: message_id=%s, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/messages/{id}/status - Status updated: message_id=%s, status=%s",
		messageID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
