package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	mgr := NewTokenManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := mgr.Generate(accountID, domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate(uuid.New(), domain.RoleCustomer)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	mgr := NewTokenManager("test-secret", -time.Minute)

	token, err := mgr.Generate(uuid.New(), domain.RoleCustomer)
	require.NoError(t, err)

	_, err = mgr.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	mgr := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := mgr.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
