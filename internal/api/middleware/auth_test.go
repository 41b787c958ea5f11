package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/auth"
	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

type stubTokenParser struct {
	claims *auth.Claims
}

func (s *stubTokenParser) Parse(tokenString string) (*auth.Claims, error) {
	if s.claims == nil || tokenString != "good" {
		return nil, auth.ErrInvalidToken
	}
	return s.claims, nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func claimsFor(role domain.AccountRole) *auth.Claims {
	return &auth.Claims{AccountID: uuid.New(), Role: role}
}

// echoClaims records whether the handler ran and what claims it saw.
func echoClaims(ran *bool, got **auth.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*ran = true
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			*got = claims
		}
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/appointments", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	claims := claimsFor(domain.RoleCustomer)
	var ran bool
	var got *auth.Claims
	handler := Auth(&stubTokenParser{claims: claims}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ran)
	assert.Equal(t, claims, got)
}

func TestAuth_MissingToken(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := Auth(&stubTokenParser{}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestAuth_InvalidToken(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := Auth(&stubTokenParser{claims: claimsFor(domain.RoleCustomer)}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestAuth_LowercaseBearerScheme(t *testing.T) {
	claims := claimsFor(domain.RoleCustomer)
	var ran bool
	var got *auth.Claims
	handler := Auth(&stubTokenParser{claims: claims}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := OptionalAuth(&stubTokenParser{}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ran)
	assert.Nil(t, got)
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	claims := claimsFor(domain.RoleCustomer)
	var ran bool
	var got *auth.Claims
	handler := OptionalAuth(&stubTokenParser{claims: claims}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ran)
	assert.Equal(t, claims, got)
}

func TestOptionalAuth_MalformedTokenRejected(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := OptionalAuth(&stubTokenParser{claims: claimsFor(domain.RoleCustomer)}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestAdminAuth_Admin(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := AdminAuth(&stubTokenParser{claims: claimsFor(domain.RoleAdmin)}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
}

func TestAdminAuth_CustomerForbidden(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := AdminAuth(&stubTokenParser{claims: claimsFor(domain.RoleCustomer)}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "Bearer good")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, ran)
}

func TestAdminAuth_NoToken(t *testing.T) {
	var ran bool
	var got *auth.Claims
	handler := AdminAuth(&stubTokenParser{claims: claimsFor(domain.RoleAdmin)}, nopLogger{})(echoClaims(&ran, &got))

	rec := doRequest(handler, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}
