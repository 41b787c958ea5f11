package inbox

import "errors"

var (
	// ErrQuoteNotFound is returned when the quote request does not exist.
	ErrQuoteNotFound = errors.New("quote request not found")

	// ErrMessageNotFound is returned when the contact message does not exist.
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidInput is returned for malformed submissions.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
