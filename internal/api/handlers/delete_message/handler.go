package delete_message

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
)

const (
	msgInvalidMessageID = "invalid message ID"
	msgNotFound         = "contact message not found"
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

// Handle DELETE /api/v1/admin/messages/{messageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := uuid.Parse(vars["messageId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/messages/{id} - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	err = h.service.DeleteMessage(r.Context(), messageID)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrMessageNotFound):
			h.logger.Warn("DELETE /admin/messages/{id} - Message not found: message_id=%s", messageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/messages/{id} - Failed to delete message: message_id=%s, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/messages/{id} - Message deleted: message_id=%s", messageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
