package get_admin_quotes

import (
	"context"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type InboxService interface {
	ListQuotes(ctx context.Context, req *models.ListRequest) (*models.QuotePageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
