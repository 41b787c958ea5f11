package contact

import "errors"

var (
	// ErrMessageNotFound is returned when the contact message does not exist
	ErrMessageNotFound = errors.New("contact.repository: contact message not found")

	// ErrBuildQuery is returned when building the SQL statement fails
	ErrBuildQuery = errors.New("contact.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails
	ErrExecQuery = errors.New("contact.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("contact.repository: failed to scan row")
)
