// Package common defines shared sentinel errors and small helpers used
// across launchboard components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository/lookup errors. Absence from an in-memory collection is
	// normally reported as a missing result, not an error; ErrNotFound is
	// for the places that must fail loudly.
	ErrNotFound = errors.New("not found")

	// Credential store errors.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so callers cannot tell registered accounts apart from
	// unregistered ones.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Remote fetch errors (transport failure or non-2xx response).
	ErrFetchFailed = errors.New("fetch failed")

	// Token errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
