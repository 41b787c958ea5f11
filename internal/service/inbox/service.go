package inbox

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	contactRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/contact"
	quoteRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/quote"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service manages the back-office inbox: quote requests and contact
// messages submitted through the public site.
type Service struct {
	quoteRepo   QuoteRepository
	contactRepo ContactRepository
	logger      Logger
}

// NewService creates a new inbox service.
func NewService(quoteRepo QuoteRepository, contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		quoteRepo:   quoteRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CreateQuote records a public quote request. New submissions start as pending.
func (s *Service) CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.QuoteResponse, error) {
	s.logger.Info("CreateQuote: new quote request from email=%s", req.Email)

	if err := validateQuote(req); err != nil {
		s.logger.Warn("CreateQuote: invalid request from email=%s: %v", req.Email, err)
		return nil, err
	}

	quote := &domain.QuoteRequest{
		ID:           uuid.New(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		ServiceType:  strings.TrimSpace(req.ServiceType),
		VehicleYear:  req.VehicleYear,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		Details:      req.Details,
		Status:       domain.QuotePending,
	}

	created, err := s.quoteRepo.Create(ctx, quote)
	if err != nil {
		s.logger.Error("CreateQuote: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateQuote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateQuote: created quote request id=%s", created.ID)
	return models.FromDomainQuote(created), nil
}

// ListQuotes returns quote requests for the back office, newest first.
func (s *Service) ListQuotes(ctx context.Context, req *models.ListRequest) (*models.QuotePageResponse, error) {
	if req.Status != nil {
		if _, err := models.ToDomainQuoteStatus(*req.Status); err != nil {
			s.logger.Warn("ListQuotes: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	filter := req.ToDomainFilter()
	quotes, total, err := s.quoteRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListQuotes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListQuotes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuotePage(quotes, total, filter.Page, filter.PageSize), nil
}

// SetQuoteStatus moves a quote request to a new status.
func (s *Service) SetQuoteStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.QuoteResponse, error) {
	s.logger.Info("SetQuoteStatus: updating quote id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainQuoteStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetQuoteStatus: invalid status=%s for quote id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("SetQuoteStatus: quote id=%s not found", id)
			return nil, ErrQuoteNotFound
		}
		s.logger.Error("SetQuoteStatus: repository error for quote id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetQuoteStatus - repository error: %v", ErrInternal, err)
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetQuoteStatus: fetch after update failed for quote id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetQuoteStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuote(quote), nil
}

// DeleteQuote permanently removes a quote request.
func (s *Service) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteQuote: deleting quote id=%s", id)

	if err := s.quoteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("DeleteQuote: quote id=%s not found", id)
			return ErrQuoteNotFound
		}
		s.logger.Error("DeleteQuote: repository error for quote id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteQuote - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateMessage records a public contact-form submission. New messages
// start as new.
func (s *Service) CreateMessage(ctx context.Context, req *models.CreateMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("CreateMessage: new contact message from email=%s", req.Email)

	if err := validateMessage(req); err != nil {
		s.logger.Warn("CreateMessage: invalid request from email=%s: %v", req.Email, err)
		return nil, err
	}

	message := &domain.ContactMessage{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.MessageNew,
	}

	created, err := s.contactRepo.Create(ctx, message)
	if err != nil {
		s.logger.Error("CreateMessage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMessage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMessage: created contact message id=%s", created.ID)
	return models.FromDomainMessage(created), nil
}

// ListMessages returns contact messages for the back office, newest first.
func (s *Service) ListMessages(ctx context.Context, req *models.ListRequest) (*models.MessagePageResponse, error) {
	if req.Status != nil {
		if _, err := models.ToDomainMessageStatus(*req.Status); err != nil {
			s.logger.Warn("ListMessages: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	filter := req.ToDomainFilter()
	messages, total, err := s.contactRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListMessages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMessagePage(messages, total, filter.Page, filter.PageSize), nil
}

// SetMessageStatus moves a contact message to a new status.
func (s *Service) SetMessageStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.MessageResponse, error) {
	s.logger.Info("SetMessageStatus: updating message id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainMessageStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetMessageStatus: invalid status=%s for message id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("SetMessageStatus: message id=%s not found", id)
			return nil, ErrMessageNotFound
		}
		s.logger.Error("SetMessageStatus: repository error for message id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetMessageStatus - repository error: %v", ErrInternal, err)
	}

	message, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetMessageStatus: fetch after update failed for message id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetMessageStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMessage(message), nil
}

// DeleteMessage permanently removes a contact message.
func (s *Service) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteMessage: deleting message id=%s", id)

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("DeleteMessage: message id=%s not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("DeleteMessage: repository error for message id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteMessage - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateQuote(req *models.CreateQuoteRequest) error {
	name := strings.TrimSpace(req.CustomerName)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be between %d and %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}
	phone := strings.TrimSpace(req.Phone)
	if len(phone) < domain.MinPhoneLength || len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be between %d and %d characters",
			ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if req.Details != nil && len(*req.Details) > domain.MaxMessageLength {
		return fmt.Errorf("%w: details must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}

func validateMessage(req *models.CreateMessageRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" || len(subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxSubjectLength)
	}
	message := strings.TrimSpace(req.Message)
	if message == "" || len(message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
