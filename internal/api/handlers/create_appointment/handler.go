package create_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m-ilin/PAG-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgSlotNotAvailable   = "the requested time slot is no longer available"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Anonymous and authenticated bookings share this endpoint; the optional
// auth middleware supplies the account link when a token is present.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var accountID *uuid.UUID
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		accountID = &claims.AccountID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(accountID))
	if err != nil {
		var validationErr *createAppointment.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			fields := make([]handlers.FieldError, len(validationErr.Fields))
			for i, f := range validationErr.Fields {
				fields[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
			}
			handlers.RespondValidationErrors(w, msgValidationFailed, fields)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s",
				req.AppointmentDate, req.AppointmentTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, date=%s, time=%s",
		result.ID, req.AppointmentDate, req.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
