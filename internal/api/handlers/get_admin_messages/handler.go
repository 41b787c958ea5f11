package get_admin_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
	"github.com/m-ilin/PAG-AppointmentService/pkg/ptr"
)

const (
	msgInvalidFilter = "invalid filter parameters"
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

// Handle GET /api/v1/admin/messages
// Query params: status, page, pageSize (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequest{}
	if v := query.Get("status"); v != "" {
		req.Status = ptr.Ptr(v)
	}
	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/messages - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Page = page
	}
	if v := query.Get("pageSize"); v != "" {
		pageSize, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/messages - Invalid pageSize: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.PageSize = pageSize
	}

	result, err := h.service.ListMessages(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inbox.ErrInvalidInput):
			h.logger.Warn("GET /admin/messages - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/messages - Failed to list messages: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/messages - Messages retrieved: count=%d, total=%d",
		len(result.Messages), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
