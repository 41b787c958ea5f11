package update_message_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type InboxService interface {
	SetMessageStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
