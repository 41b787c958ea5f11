package inbox

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	contactRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/contact"
	quoteRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/quote"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/inbox/models"
)

type stubQuoteRepo struct {
	byID map[uuid.UUID]*domain.QuoteRequest
}

func newStubQuoteRepo(quotes ...*domain.QuoteRequest) *stubQuoteRepo {
	byID := make(map[uuid.UUID]*domain.QuoteRequest, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}
	return &stubQuoteRepo{byID: byID}
}

func (s *stubQuoteRepo) Create(_ context.Context, q *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	s.byID[q.ID] = q
	return q, nil
}

func (s *stubQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	q, ok := s.byID[id]
	if !ok {
		return nil, quoteRepo.ErrQuoteNotFound
	}
	return q, nil
}

func (s *stubQuoteRepo) ListWithFilter(_ context.Context, _ domain.InboxFilter) ([]*domain.QuoteRequest, int, error) {
	out := make([]*domain.QuoteRequest, 0, len(s.byID))
	for _, q := range s.byID {
		out = append(out, q)
	}
	return out, len(out), nil
}

func (s *stubQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.QuoteStatus) error {
	q, ok := s.byID[id]
	if !ok {
		return quoteRepo.ErrQuoteNotFound
	}
	q.Status = status
	return nil
}

func (s *stubQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return quoteRepo.ErrQuoteNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubContactRepo struct {
	byID map[uuid.UUID]*domain.ContactMessage
}

func newStubContactRepo(messages ...*domain.ContactMessage) *stubContactRepo {
	byID := make(map[uuid.UUID]*domain.ContactMessage, len(messages))
	for _, m := range messages {
		byID[m.ID] = m
	}
	return &stubContactRepo{byID: byID}
}

func (s *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	s.byID[m.ID] = m
	return m, nil
}

func (s *stubContactRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, contactRepo.ErrMessageNotFound
	}
	return m, nil
}

func (s *stubContactRepo) ListWithFilter(_ context.Context, _ domain.InboxFilter) ([]*domain.ContactMessage, int, error) {
	out := make([]*domain.ContactMessage, 0, len(s.byID))
	for _, m := range s.byID {
		out = append(out, m)
	}
	return out, len(out), nil
}

func (s *stubContactRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.MessageStatus) error {
	m, ok := s.byID[id]
	if !ok {
		return contactRepo.ErrMessageNotFound
	}
	m.Status = status
	return nil
}

func (s *stubContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return contactRepo.ErrMessageNotFound
	}
	delete(s.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *stubQuoteRepo, *stubContactRepo) {
	quotes := newStubQuoteRepo()
	contacts := newStubContactRepo()
	return NewService(quotes, contacts, nopLogger{}), quotes, contacts
}

func validQuote() *models.CreateQuoteRequest {
	return &models.CreateQuoteRequest{
		CustomerName: "Jane Driver",
		Email:        "jane@example.com",
		Phone:        "555-010-2030",
		ServiceType:  "Brake Inspection",
	}
}

func validMessage() *models.CreateMessageRequest {
	return &models.CreateMessageRequest{
		Name:    "Jane Driver",
		Email:   "jane@example.com",
		Subject: "Opening hours",
		Message: "Are you open on holidays?",
	}
}

func TestCreateQuote_StartsPending(t *testing.T) {
	svc, quotes, _ := newTestService()

	resp, err := svc.CreateQuote(context.Background(), validQuote())

	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotePending), resp.Status)
	assert.Len(t, quotes.byID, 1)
}

func TestCreateQuote_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	req := validQuote()
	req.Email = "not-an-email"

	_, err := svc.CreateQuote(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetQuoteStatus(t *testing.T) {
	svc, quotes, _ := newTestService()
	created, err := svc.CreateQuote(context.Background(), validQuote())
	require.NoError(t, err)

	resp, err := svc.SetQuoteStatus(context.Background(), created.ID, &models.UpdateStatusRequest{Status: "quoted"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.QuoteQuoted), resp.Status)
	assert.Equal(t, domain.QuoteQuoted, quotes.byID[created.ID].Status)
}

func TestSetQuoteStatus_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SetQuoteStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "approved"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetQuoteStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SetQuoteStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "quoted"})

	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestDeleteQuote(t *testing.T) {
	svc, quotes, _ := newTestService()
	created, err := svc.CreateQuote(context.Background(), validQuote())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuote(context.Background(), created.ID))
	assert.Empty(t, quotes.byID)

	err = svc.DeleteQuote(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestListQuotes_InvalidStatusFilter(t *testing.T) {
	svc, _, _ := newTestService()

	bad := "approved"
	_, err := svc.ListQuotes(context.Background(), &models.ListRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateMessage_StartsNew(t *testing.T) {
	svc, _, contacts := newTestService()

	resp, err := svc.CreateMessage(context.Background(), validMessage())

	require.NoError(t, err)
	assert.Equal(t, string(domain.MessageNew), resp.Status)
	assert.Len(t, contacts.byID, 1)
}

func TestCreateMessage_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	req := validMessage()
	req.Message = ""

	_, err := svc.CreateMessage(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetMessageStatus(t *testing.T) {
	svc, _, contacts := newTestService()
	created, err := svc.CreateMessage(context.Background(), validMessage())
	require.NoError(t, err)

	resp, err := svc.SetMessageStatus(context.Background(), created.ID, &models.UpdateStatusRequest{Status: "read"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.MessageRead), resp.Status)
	assert.Equal(t, domain.MessageRead, contacts.byID[created.ID].Status)
}

func TestDeleteMessage_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteMessage(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrMessageNotFound)
}
