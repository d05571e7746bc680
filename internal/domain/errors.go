package domain

import "errors"

// Sentinel errors shared across layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownSeparator   = errors.New("unknown separator mode")
)
