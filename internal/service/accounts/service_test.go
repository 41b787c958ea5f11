package accounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	accountRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/account"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/accounts/models"
)

type stubAccountRepo struct {
	byEmail map[string]*domain.Account

	createErr error
	created   *domain.Account
}

func newStubRepo(accounts ...*domain.Account) *stubAccountRepo {
	byEmail := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byEmail[a.Email] = a
	}
	return &stubAccountRepo{byEmail: byEmail}
}

func (s *stubAccountRepo) Create(_ context.Context, acc *domain.Account) (*domain.Account, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.byEmail[acc.Email]; ok {
		return nil, accountRepo.ErrEmailTaken
	}
	s.byEmail[acc.Email] = acc
	s.created = acc
	return acc, nil
}

func (s *stubAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	for _, a := range s.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, accountRepo.ErrAccountNotFound
}

func (s *stubAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	a, ok := s.byEmail[email]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return a, nil
}

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Generate(uuid.UUID, domain.AccountRole) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Jane Driver",
		Email:    "jane@example.com",
		Phone:    "555-010-2030",
		Password: "hunter2hunter2",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubTokenIssuer{token: "signed"}, nopLogger{})

	resp, err := svc.Register(context.Background(), validRegister())

	require.NoError(t, err)
	assert.Equal(t, "signed", resp.Token)
	assert.Equal(t, "jane@example.com", resp.Account.Email)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.RoleCustomer, repo.created.Role)
	// the hash is stored, never the password
	assert.NotEqual(t, "hunter2hunter2", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("hunter2hunter2")))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubTokenIssuer{token: "signed"}, nopLogger{})

	req := validRegister()
	req.Email = "  Jane@Example.COM "

	resp, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Account.Email)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newStubRepo(), &stubTokenIssuer{token: "signed"}, nopLogger{})

	cases := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"short name", func(r *models.RegisterRequest) { r.Name = "J" }},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short phone", func(r *models.RegisterRequest) { r.Phone = "123" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(req)

			_, err := svc.Register(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	existing := &domain.Account{ID: uuid.New(), Email: "jane@example.com"}
	svc := NewService(newStubRepo(existing), &stubTokenIssuer{token: "signed"}, nopLogger{})

	_, err := svc.Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	svc := NewService(newStubRepo(account), &stubTokenIssuer{token: "signed"}, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed", resp.Token)
	assert.Equal(t, account.ID, resp.Account.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{Email: "jane@example.com", PasswordHash: string(hash)}
	svc := NewService(newStubRepo(account), &stubTokenIssuer{token: "signed"}, nopLogger{})

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newStubRepo(), &stubTokenIssuer{token: "signed"}, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// same error as a wrong password
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newStubRepo(), &stubTokenIssuer{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAccountNotFound)
}
