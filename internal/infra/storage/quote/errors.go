package quote

import "errors"

var (
	// ErrQuoteNotFound is returned when the quote request does not exist
	ErrQuoteNotFound = errors.New("quote.repository: quote request not found")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("quote.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("quote.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("quote.repository: failed to scan row")
)
