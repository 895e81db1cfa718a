package apperr

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUnreachable = "UPSTREAM_UNREACHABLE"
	ErrCodeBadStatus   = "UPSTREAM_BAD_STATUS"
	ErrCodeBadBody     = "UPSTREAM_BAD_BODY"
)

// FetchError represents a failed request against the chess.com public API.
// It is fatal for the run: the pipeline aborts and no report is written.
// Missing JSON fields are never a FetchError; they resolve to unspecified
// values at the point of use.
type FetchError struct {
	Code   string // Error code (e.g., "UPSTREAM_UNREACHABLE")
	URL    string // Request URL
	Status int    // HTTP status code, 0 when the request never completed
	Err    error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %s returned status %d (%v)", e.Code, e.URL, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s returned status %d", e.Code, e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.URL)
	}
}

// Unwrap returns the underlying error for error wrapping support
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewUnreachableError creates a FetchError for a transport-level failure.
func NewUnreachableError(url string, err error) *FetchError {
	return &FetchError{
		Code: ErrCodeUnreachable,
		URL:  url,
		Err:  err,
	}
}

// NewBadStatusError creates a FetchError for a non-2xx response.
func NewBadStatusError(url string, status int) *FetchError {
	return &FetchError{
		Code:   ErrCodeBadStatus,
		URL:    url,
		Status: status,
	}
}

// NewBadBodyError creates a FetchError for a response body that failed to decode.
func NewBadBodyError(url string, err error) *FetchError {
	return &FetchError{
		Code: ErrCodeBadBody,
		URL:  url,
		Err:  err,
	}
}

// IsFetch reports whether err is (or wraps) a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
