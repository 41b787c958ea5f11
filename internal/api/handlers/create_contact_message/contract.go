package create_contact_message

import (
	"context"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type InboxService interface {
	CreateMessage(ctx context.Context, req *models.CreateMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
