package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	accountRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/account"
	appointmentRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/appointment"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	getErr       error
	createErr    error
	created      *domain.Appointment
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.appointments, nil
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *appt
	created.ID = uuid.New()
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

type stubAccountRepo struct {
	account *domain.Account
	err     error
}

func (s *stubAccountRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.account, nil
}

// inlineTxManager runs the callback without any transaction, which is
// all the use case logic needs to be exercised.
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(appts *stubAppointmentRepo, accounts *stubAccountRepo, now time.Time) *UseCase {
	uc := NewUseCase(appts, accounts, inlineTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func mustTime(t *testing.T, label string) types.TimeOfDay {
	t.Helper()
	tod, err := types.Parse(label)
	require.NoError(t, err)
	return tod
}

// now is a Wednesday; monday is the following week.
var (
	testNow    = time.Date(2025, 10, 8, 14, 30, 0, 0, time.UTC)
	testMonday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
)

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		CustomerName: "Jane Driver",
		Email:        "jane@example.com",
		Phone:        "555-010-2030",
		ServiceType:  "Oil Change",
		Date:         testMonday,
		StartTime:    mustTime(t, "10:00 AM"),
	}
}

func fieldNames(ve *ValidationError) []string {
	names := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		names[i] = f.Field
	}
	return names
}

func TestExecute_Success(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, &stubAccountRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, "10:00 AM", resp.StartTime.Label())
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_ExplicitDuration(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, &stubAccountRepo{}, testNow)

	duration := 120
	req := validRequest(t)
	req.DurationMinutes = &duration

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestExecute_AggregatesAllViolations(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubAccountRepo{}, testNow)

	year := 1850
	req := &Request{
		CustomerName: "J",
		Email:        "not-an-email",
		Phone:        "123",
		VehicleYear:  &year,
		ServiceType:  "  ",
		Date:         time.Time{},
		StartTime:    types.TimeOfDay(-1),
	}

	_, err := uc.Execute(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t,
		[]string{"customerName", "email", "phone", "vehicleYear", "serviceType", "appointmentDate"},
		fieldNames(ve))
}

func TestExecute_TodayRejected(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubAccountRepo{}, testNow)

	req := validRequest(t)
	req.Date = time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"appointmentDate"}, fieldNames(ve))
	assert.Equal(t, "must be a future date", ve.Fields[0].Message)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubAccountRepo{}, testNow)

	req := validRequest(t)
	req.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC) // Sunday

	_, err := uc.Execute(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"appointmentDate"}, fieldNames(ve))
	assert.Equal(t, "the shop is closed on this date", ve.Fields[0].Message)
}

func TestExecute_NonSlotTimeRejected(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubAccountRepo{}, testNow)

	req := validRequest(t)
	req.StartTime = mustTime(t, "10:30 AM")

	_, err := uc.Execute(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []string{"appointmentTime"}, fieldNames(ve))
}

func TestExecute_SlotTakenAtWriteTime(t *testing.T) {
	taken := &domain.Appointment{
		AppointmentDate: testMonday,
		StartTime:       mustTime(t, "10:00 AM"),
		Status:          domain.StatusPending,
	}
	uc := newTestUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{taken}}, &stubAccountRepo{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := &domain.Appointment{
		AppointmentDate: testMonday,
		StartTime:       mustTime(t, "10:00 AM"),
		Status:          domain.StatusCancelled,
	}
	uc := newTestUseCase(&stubAppointmentRepo{appointments: []*domain.Appointment{cancelled}}, &stubAccountRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// The availability check passed but the insert hit the unique index:
	// a concurrent transaction took the slot first.
	repo := &stubAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &stubAccountRepo{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubAppointmentRepo{getErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, &stubAccountRepo{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_PrefillFromAccount(t *testing.T) {
	accID := uuid.New()
	accounts := &stubAccountRepo{account: &domain.Account{
		ID:    accID,
		Name:  "Stored Name",
		Email: "stored@example.com",
		Phone: "555-999-8877",
		Role:  domain.RoleCustomer,
	}}
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, accounts, testNow)

	req := validRequest(t)
	req.CustomerName = ""
	req.Email = ""
	req.Phone = ""
	req.AccountID = &accID

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Stored Name", resp.CustomerName)
	assert.Equal(t, "stored@example.com", resp.Email)
	assert.Equal(t, "555-999-8877", resp.Phone)
	require.NotNil(t, resp.AccountID)
	assert.Equal(t, accID, *resp.AccountID)
}

func TestExecute_PrefillBodyWins(t *testing.T) {
	accID := uuid.New()
	accounts := &stubAccountRepo{account: &domain.Account{
		ID:    accID,
		Name:  "Stored Name",
		Email: "stored@example.com",
		Phone: "555-999-8877",
	}}
	uc := newTestUseCase(&stubAppointmentRepo{}, accounts, testNow)

	req := validRequest(t)
	req.AccountID = &accID

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Jane Driver", resp.CustomerName)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestExecute_MissingAccountBooksAnonymous(t *testing.T) {
	accID := uuid.New()
	accounts := &stubAccountRepo{err: accountRepo.ErrAccountNotFound}
	uc := newTestUseCase(&stubAppointmentRepo{}, accounts, testNow)

	req := validRequest(t)
	req.AccountID = &accID

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.AccountID)
}
