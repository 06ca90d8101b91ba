package models

import "errors"

// Sentinel errors shared by repos and services. Handlers translate these into
// HTTP statuses; anything not in this list is a 500 whose detail stays in the
// operational log.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidID          = errors.New("invalid id format")
	ErrForbidden          = errors.New("access denied")
)
