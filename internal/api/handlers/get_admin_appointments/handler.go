package get_admin_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/appointments"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/appointments/models"
	"github.com/m-ilin/PAG-AppointmentService/pkg/ptr"
)

const (
	msgInvalidFilter = "invalid filter parameters"
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

// Handle GET /api/v1/admin/appointments
// Query params: status, startDate, endDate, page, pageSize (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{}
	if v := query.Get("status"); v != "" {
		req.Status = ptr.Ptr(v)
	}
	if v := query.Get("startDate"); v != "" {
		req.StartDate = ptr.Ptr(v)
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = ptr.Ptr(v)
	}
	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Page = page
	}
	if v := query.Get("pageSize"); v != "" {
		pageSize, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid pageSize: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.PageSize = pageSize
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: count=%d, total=%d",
		len(result.Appointments), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
