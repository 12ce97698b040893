package services

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrNoValidated        = errors.New("no validated achievements")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
