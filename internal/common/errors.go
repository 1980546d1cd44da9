// Package common defines shared constants and sentinel errors used across
// the Rango Amigo server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors. ErrorInvalidCredentials is deliberately the same for an
	// unknown email and for a wrong password on a real account.
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorUnauthenticated    = errors.New("authentication required")
	ErrorForbidden          = errors.New("not the owner of this listing")

	// Validation / lifecycle errors.
	ErrorValidation  = errors.New("validation error")
	ErrorNotArchived = errors.New("listing must be archived before deletion")
)
