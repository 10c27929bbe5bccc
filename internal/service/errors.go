package service

import "errors"

// Domain errors surfaced by the services. Handlers map these to HTTP statuses
// and client-safe messages; anything else is a persistence failure (500).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidImage       = errors.New("invalid base64 image")
	ErrImageTooLarge      = errors.New("image exceeds maximum size")
	ErrNoImage            = errors.New("no image found")
)
