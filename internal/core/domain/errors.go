package domain

import "errors"

var (
	// ErrUnauthorized means no valid session accompanied the request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the session's role is below the required tier.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidLeadStatus  = errors.New("invalid lead status")
)
