package get_admin_messages

import (
	"context"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type InboxService interface {
	ListMessages(ctx context.Context, req *models.ListRequest) (*models.MessagePageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
