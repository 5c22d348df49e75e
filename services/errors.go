package services

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("role mismatch")
	ErrUsernameTaken      = errors.New("username already exists")
)
