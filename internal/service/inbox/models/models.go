package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for a status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid status")
)

// Request models

// CreateQuoteRequest is a public quote-request submission.
type CreateQuoteRequest struct {
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	ServiceType  string  `json:"serviceType"`
	VehicleYear  *int    `json:"vehicleYear,omitempty"`
	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	Details      *string `json:"details,omitempty"`
}

// CreateMessageRequest is a public contact-form submission.
type CreateMessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// ListRequest pages through an inbox, optionally narrowed to one status.
type ListRequest struct {
	Status   *string `json:"status,omitempty"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListRequest) ToDomainFilter() domain.InboxFilter {
	filter := domain.InboxFilter{
		Status:   r.Status,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = domain.DefaultPageSize
	}
	if filter.PageSize > domain.MaxPageSize {
		filter.PageSize = domain.MaxPageSize
	}
	return filter
}

// UpdateStatusRequest moves an inbox item to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// QuoteResponse is the quote request DTO.
type QuoteResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ServiceType  string    `json:"serviceType"`
	VehicleYear  *int      `json:"vehicleYear,omitempty"`
	VehicleMake  *string   `json:"vehicleMake,omitempty"`
	VehicleModel *string   `json:"vehicleModel,omitempty"`
	Details      *string   `json:"details,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// QuotePageResponse is a paginated quote listing.
type QuotePageResponse struct {
	Quotes   []QuoteResponse `json:"quotes"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// MessageResponse is the contact message DTO.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessagePageResponse is a paginated contact message listing.
type MessagePageResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// Converters

// FromDomainQuote converts a domain quote request into a DTO.
func FromDomainQuote(q *domain.QuoteRequest) *QuoteResponse {
	if q == nil {
		return nil
	}
	return &QuoteResponse{
		ID:           q.ID,
		CustomerName: q.CustomerName,
		Email:        q.Email,
		Phone:        q.Phone,
		ServiceType:  q.ServiceType,
		VehicleYear:  q.VehicleYear,
		VehicleMake:  q.VehicleMake,
		VehicleModel: q.VehicleModel,
		Details:      q.Details,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// FromDomainQuotePage converts a page of domain quote requests.
func FromDomainQuotePage(quotes []*domain.QuoteRequest, total, page, pageSize int) *QuotePageResponse {
	resp := &QuotePageResponse{
		Quotes:   make([]QuoteResponse, 0, len(quotes)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, q := range quotes {
		if dto := FromDomainQuote(q); dto != nil {
			resp.Quotes = append(resp.Quotes, *dto)
		}
	}
	return resp
}

// FromDomainMessage converts a domain contact message into a DTO.
func FromDomainMessage(m *domain.ContactMessage) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainMessagePage converts a page of domain contact messages.
func FromDomainMessagePage(messages []*domain.ContactMessage, total, page, pageSize int) *MessagePageResponse {
	resp := &MessagePageResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, m := range messages {
		if dto := FromDomainMessage(m); dto != nil {
			resp.Messages = append(resp.Messages, *dto)
		}
	}
	return resp
}

// ToDomainQuoteStatus converts a string into a QuoteStatus with validation.
func ToDomainQuoteStatus(status string) (domain.QuoteStatus, error) {
	s := domain.QuoteStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainMessageStatus converts a string into a MessageStatus with validation.
func ToDomainMessageStatus(status string) (domain.MessageStatus, error) {
	s := domain.MessageStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
