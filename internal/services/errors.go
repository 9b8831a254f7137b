package services

import "errors"

// Sentinel errors used by handlers to pick a status code. Services wrap them
// with a descriptive reason, e.g. fmt.Errorf("tag already assigned: %w", ErrConflict).
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("invalid input")
)
