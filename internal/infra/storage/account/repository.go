package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	"github.com/m-ilin/PAG-AppointmentService/pkg/dbmetrics"
	"github.com/m-ilin/PAG-AppointmentService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var accountColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"password_hash",
	"role",
	"created_at",
	"updated_at",
}

// Repository persists customer and admin accounts.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an account repository over the given executor.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account. Emails are unique case-insensitively
// (the column is CITEXT-like via LOWER index).
func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("id", "name", "email", "phone", "password_hash", "role").
		Values(acc.ID, acc.Name, acc.Email, acc.Phone, acc.PasswordHash, acc.Role).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return acc, nil
}

// GetByID fetches one account.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail fetches one account by email, case-insensitively.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *Repository) getOne(ctx context.Context, cond squirrel.Sqlizer) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("accounts").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var acc domain.Account
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&acc.ID,
		&acc.Name,
		&acc.Email,
		&acc.Phone,
		&acc.PasswordHash,
		&acc.Role,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan account: %v", ErrScanRow, err)
	}

	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}
