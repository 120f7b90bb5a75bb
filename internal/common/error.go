// Package common defines shared constants and sentinel errors used across
// the client layers of the console. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Local validation errors.
	ErrorValidation = errors.New("validation error")
)
