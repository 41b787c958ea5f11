package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	accountRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/account"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/accounts/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service manages account registration and authentication.
type Service struct {
	accountRepo AccountRepository
	tokens      TokenIssuer
	logger      Logger
}

// NewService creates a new account service.
func NewService(accountRepo AccountRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a customer account and returns a session token.
// Staff accounts are provisioned out of band, never through this endpoint.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: creating account for email=%s", req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: invalid request for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	account := &domain.Account{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Generate(created.ID, created.Role)
	if err != nil {
		s.logger.Error("Register: failed to issue token for account=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created account id=%s", created.ID)
	return &models.AuthResponse{Token: token, Account: *models.FromDomainAccount(created)}, nil
}

// Login authenticates an account by email and password and returns a
// session token. Lookup and compare failures collapse into one error so
// the response never reveals which credential was wrong.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: authenticating email=%s", req.Email)

	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		s.logger.Error("Login: failed to issue token for account=%s: %v", account.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: authenticated account id=%s", account.ID)
	return &models.AuthResponse{Token: token, Account: *models.FromDomainAccount(account)}, nil
}

// GetByID fetches an account profile.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("GetByID: account id=%s not found", id)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("GetByID: repository error for account=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAccount(account), nil
}

func validateRegister(req *models.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < domain.MinPhoneLength || len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be between %d and %d characters",
			ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if len(req.Password) < domain.MinPasswordLength || len(req.Password) > domain.MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}

	return nil
}
