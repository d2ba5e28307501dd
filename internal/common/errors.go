// Package common defines shared constants and sentinel errors used across
// the lunchboxd server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorConflict        = errors.New("username or email already exists")
	ErrorUnauthorized    = errors.New("invalid credentials")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("not authorized")

	// Identifier errors. Client-supplied identifiers are untrusted, so a
	// malformed one is normally reinterpreted as "not found" by the caller.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Store errors. The only retryable kind.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
