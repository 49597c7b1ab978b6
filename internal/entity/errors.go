package domain

import "errors"

// Sentinel errors crossing the usecase boundary. Handlers map these to HTTP
// statuses with errors.Is; everything else is a 500.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
)
