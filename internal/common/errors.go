// Package common defines shared constants and sentinel errors used across
// the bridge layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity store errors. Both are surfaced to the caller and never retried
	// by the data-access layer.
	ErrStoreUnavailable = errors.New("identity store unavailable")
	ErrQueryFailed      = errors.New("identity store query failed")

	// Authentication failures. Transports must not distinguish these from a
	// plain wrong secret when answering the end caller.
	ErrNoSuchUser          = errors.New("no such user")
	ErrNoSuchCredential    = errors.New("no such credential")
	ErrMalformedCredential = errors.New("malformed credential record")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrRateLimited    = errors.New("too many failed attempts")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// IsAuthFailure reports whether err means "checked and rejected" rather than
// "could not check".
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrNoSuchUser) ||
		errors.Is(err, ErrNoSuchCredential) ||
		errors.Is(err, ErrMalformedCredential) ||
		errors.Is(err, ErrorUnauthorized)
}

// IsStoreFailure reports whether err came from the identity store round trip.
func IsStoreFailure(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrQueryFailed)
}
