package service

import "errors"

// Handlers map these to HTTP status codes; wrap them with fmt.Errorf("...: %w", ErrX).
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)
