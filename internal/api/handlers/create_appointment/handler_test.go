package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/api/handlers"
	"github.com/m-ilin/PAG-AppointmentService/pkg/types"

	createAppointment "github.com/m-ilin/PAG-AppointmentService/internal/usecase/create_appointment"
)

type stubUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postJSON(t *testing.T, handler *Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName":    "Jane Driver",
		"email":           "jane@example.com",
		"phone":           "555-010-2030",
		"serviceType":     "Oil Change",
		"appointmentDate": "2025-10-13",
		"appointmentTime": "10:00 AM",
	}
}

func TestHandle_Created(t *testing.T) {
	start, err := types.Parse("10:00 AM")
	require.NoError(t, err)
	uc := &stubUseCase{resp: &createAppointment.Response{
		ID:           uuid.New(),
		CustomerName: "Jane Driver",
		StartTime:    start,
		Status:       "pending",
	}}
	handler := NewHandler(uc, nopLogger{})

	rec := postJSON(t, handler, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "10:00 AM", resp.AppointmentTime)

	require.NotNil(t, uc.gotReq)
	assert.Nil(t, uc.gotReq.AccountID)
	assert.Equal(t, start, uc.gotReq.StartTime)
}

func TestHandle_ValidationErrors(t *testing.T) {
	ve := &createAppointment.ValidationError{Fields: []createAppointment.FieldError{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "appointmentDate", Message: "must be a future date"},
	}}
	handler := NewHandler(&stubUseCase{err: ve}, nopLogger{})

	rec := postJSON(t, handler, validBody())

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "email", resp.Fields[0].Field)
	assert.Equal(t, "appointmentDate", resp.Fields[1].Field)
}

func TestHandle_SlotConflict(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: createAppointment.ErrSlotNotAvailable}, nopLogger{})

	rec := postJSON(t, handler, validBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: createAppointment.ErrInternal}, nopLogger{})

	rec := postJSON(t, handler, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnparseableScheduleForwarded(t *testing.T) {
	// Malformed date and time are forwarded as zero values so the use
	// case can report them together with the other field violations.
	uc := &stubUseCase{err: &createAppointment.ValidationError{Fields: []createAppointment.FieldError{
		{Field: "appointmentDate", Message: "is required"},
	}}}
	handler := NewHandler(uc, nopLogger{})

	body := validBody()
	body["appointmentDate"] = "13/10/2025"
	body["appointmentTime"] = "25:99"

	rec := postJSON(t, handler, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.True(t, uc.gotReq.Date.IsZero())
	assert.Equal(t, types.TimeOfDay(-1), uc.gotReq.StartTime)
}
