package service

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist or is
	// not visible to the requesting user.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned on a failed login. The same error
	// covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateFood is returned when creating a food whose name already
	// exists in the catalog.
	ErrDuplicateFood = errors.New("food with this name already exists")

	// ErrValidation is returned for request payloads that pass binding but
	// fail a domain rule.
	ErrValidation = errors.New("validation failed")
)
