package doi

import (
	"errors"
	"fmt"
)

// Common errors returned by DOI operations.
var (
	// ErrEmptyDOI indicates an empty DOI string was passed to New.
	ErrEmptyDOI = errors.New("empty DOI")

	// ErrNotFound indicates the resolver does not know the DOI.
	ErrNotFound = errors.New("DOI not registered")

	// ErrNetwork indicates a network connectivity issue.
	ErrNetwork = errors.New("network error communicating with resolver")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from resolver")
)

// StatusError represents a non-success HTTP status from the resolver.
type StatusError struct {
	StatusCode int
	DOI        string
}

func (e *StatusError) Error() string {
	if e.DOI != "" {
		return fmt.Sprintf("resolver returned status %d for %s", e.StatusCode, e.DOI)
	}
	return fmt.Sprintf("resolver returned status %d", e.StatusCode)
}

// IsNotFound returns true if the error indicates an unregistered DOI.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 404
	}
	return false
}

// IsStatusError returns the StatusError and true if the error carries an
// HTTP status from the resolver.
func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
