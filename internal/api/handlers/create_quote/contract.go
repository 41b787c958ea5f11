package create_quote

import (
	"context"

	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type InboxService interface {
	CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
