package account

import "errors"

var (
	// ErrAccountNotFound is returned when the account does not exist
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrEmailTaken is returned when the unique email constraint rejects an insert
	ErrEmailTaken = errors.New("account.repository: email already registered")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
