package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// Resource errors. ErrNotFound covers both a row that does not exist and a
// row owned by a different account; callers must not be able to tell the
// two apart.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrInvalidRole = errors.New("invalid chat role")
)

// Preference errors
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
