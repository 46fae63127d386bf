package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMalformedRecord indicates a raw record could not be validated.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNoTable indicates no lineage table has been loaded yet.
	ErrNoTable = errors.New("no lineage table loaded")

	// Gateway Errors.

	// ErrFetchFailed indicates the lineage service could not be reached or
	// answered with an unexpected response.
	ErrFetchFailed = errors.New("lineage fetch failed")

	// Authentication Errors.

	// ErrAuthRequired indicates the gateway requires authentication but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the authentication has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)

// FetchError reports a failed lineage fetch.
// Err is one of ErrFetchFailed, ErrAuthInvalid, ErrAuthExpired,
// ErrAuthRequired or ErrNotFound, optionally wrapping a transport error.
type FetchError struct {
	LineageID  string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch lineage %q: status %d: %v", e.LineageID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch lineage %q: %v", e.LineageID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsAuthError checks if the error is an authentication failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthInvalid) ||
		errors.Is(err, ErrAuthExpired) ||
		errors.Is(err, ErrAuthRequired) ||
		errors.Is(err, ErrTokenRefreshFailed)
}

// IsNotFound checks if the error indicates an unknown lineage id.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
