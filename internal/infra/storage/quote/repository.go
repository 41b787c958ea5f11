package quote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	"github.com/m-ilin/PAG-AppointmentService/pkg/dbmetrics"
	"github.com/m-ilin/PAG-AppointmentService/pkg/psqlbuilder"
)

var quoteColumns = []string{
	"id",
	"customer_name",
	"email",
	"phone",
	"service_type",
	"vehicle_year",
	"vehicle_make",
	"vehicle_model",
	"details",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists quote requests.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a quote repository over the given executor.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new quote request.
func (r *Repository) Create(ctx context.Context, q *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("quote_requests").
		Columns(
			"id",
			"customer_name",
			"email",
			"phone",
			"service_type",
			"vehicle_year",
			"vehicle_make",
			"vehicle_model",
			"details",
			"status",
		).
		Values(
			q.ID,
			q.CustomerName,
			q.Email,
			q.Phone,
			q.ServiceType,
			q.VehicleYear,
			q.VehicleMake,
			q.VehicleModel,
			q.Details,
			q.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return q, nil
}

// GetByID fetches one quote request.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(quoteColumns...).
		From("quote_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	q, err := scanQuote(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan quote: %v", ErrScanRow, err)
	}

	return q, nil
}

// ListWithFilter returns one page of quote requests, newest first,
// plus the total count for the filter.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.InboxFilter) ([]*domain.QuoteRequest, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("quote_requests")
	if filter.Status != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	selectBuilder := psqlbuilder.Select(quoteColumns...).
		From("quote_requests").
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	quotes := make([]*domain.QuoteRequest, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return quotes, total, nil
}

// UpdateStatus sets the quote request status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QuoteStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("quote_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

// Delete removes a quote request.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("quote_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrQuoteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuote(row rowScanner) (*domain.QuoteRequest, error) {
	var q domain.QuoteRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&q.ID,
		&q.CustomerName,
		&q.Email,
		&q.Phone,
		&q.ServiceType,
		&q.VehicleYear,
		&q.VehicleMake,
		&q.VehicleModel,
		&q.Details,
		&q.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return &q, nil
}
