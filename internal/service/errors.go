package service

import "errors"

// ValidationError marks input problems that should surface as a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrMissingFields    ValidationError = "name and game are required"
	ErrNameLength       ValidationError = "name must be between 2 and 40 characters"
	ErrNoUpdateFields   ValidationError = "no fields to update"
	ErrStatusRequired   ValidationError = "status is required"
	ErrPasswordRequired ValidationError = "current and new passwords are required"
	ErrPasswordTooShort ValidationError = "new password must be at least 6 characters"
)

var (
	ErrDuplicateRegistration = errors.New("an active registration already exists for this name and game")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
