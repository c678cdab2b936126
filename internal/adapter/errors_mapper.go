package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Error string `json:"error"`
}

// mapHTTPError returns nil for 2xx responses and a *BackendError wrapping the
// sentinel matching the status code otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var eb errorBody
	if err := json.Unmarshal(resp.Body(), &eb); err != nil {
		eb.Error = ""
	}

	backendErr := NewBackendError(resp.StatusCode(), strings.TrimSpace(eb.Error))
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		backendErr.Body = body
	}

	return backendErr
}

// NewBackendError builds a *BackendError for status, classified with the
// sentinel matching that status.
func NewBackendError(status int, message string) *BackendError {
	backendErr := &BackendError{StatusCode: status, Message: message}

	switch status {
	case http.StatusBadRequest:
		backendErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		backendErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		backendErr.kind = ErrForbidden
	case http.StatusNotFound:
		backendErr.kind = ErrNotFound
	case http.StatusConflict:
		backendErr.kind = ErrConflict
	case http.StatusBadGateway:
		backendErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		backendErr.kind = ErrInternalServerError
	default:
		backendErr.kind = ErrUnexpectedStatus
		backendErr.Body = http.StatusText(status)
	}

	return backendErr
}
