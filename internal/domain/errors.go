package domain

import "errors"

// Sentinel errors shared between repositories, services and the HTTP edge.
// Transport code maps them to status codes with errors.Is; anything else is a
// store failure and surfaces as a 500.
var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
