package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUnreachable wraps transport failures: refused connections, DNS
	// errors and timeouts.
	ErrUnreachable = errors.New("backend unreachable")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed backend response")
)

// BackendError is a non-2xx backend reply. Message holds the "error" field
// of a JSON body when the backend supplied one.
type BackendError struct {
	StatusCode int
	Message    string
	Body       string

	kind error
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %s", e.kind, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("%v: %s", e.kind, e.Body)
	}
	return fmt.Sprintf("%v: http %d", e.kind, e.StatusCode)
}

func (e *BackendError) Unwrap() error {
	return e.kind
}
