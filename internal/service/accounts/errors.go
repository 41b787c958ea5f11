package accounts

import "errors"

var (
	// ErrAccountNotFound is returned when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a failed login. The message is
	// deliberately silent on whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned for malformed registration data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
