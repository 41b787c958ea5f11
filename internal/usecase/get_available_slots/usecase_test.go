package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// 2025-10-13 is a Monday.
var (
	monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return s.appointments, s.err
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

func newTestUseCase(repo AppointmentRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func labels(slots []types.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label()
	}
	return out
}

func TestExecute_WeekdayFullyOpen(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, monday.AddDate(0, 0, -7))

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	}, labels(resp.Slots))
}

func TestExecute_SundayClosed(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, sunday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	nine := types.TimeOfDay(9 * 60)
	repo := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: nine, Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo, monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 9)
	assert.NotContains(t, resp.Slots, nine)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	nine := types.TimeOfDay(9 * 60)
	repo := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: nine, Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo, monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 10)
	assert.Contains(t, resp.Slots, nine)
}

func TestExecute_PastDateYieldsNoSlots(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, monday.AddDate(0, 0, 1))

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, monday)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubAppointmentRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, monday.AddDate(0, 0, -1))

	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}
