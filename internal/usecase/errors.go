package usecase

import "errors"

// Service error taxonomy. Handlers map these to HTTP status codes with
// errors.Is; anything not in this list surfaces as a generic 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnverified         = errors.New("email verification required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("not found")
	ErrExpired            = errors.New("expired")
)
