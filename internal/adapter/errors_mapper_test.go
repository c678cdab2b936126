package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBackendError(t *testing.T) {
	err := NewBackendError(http.StatusBadRequest, "Length must be at least 1")

	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.Equal(t, "bad request: Length must be at least 1", err.Error())
}

func TestNewBackendError_UnexpectedStatus(t *testing.T) {
	err := NewBackendError(http.StatusTeapot, "")

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, "unexpected status: I'm a teapot", err.Error())
}

func TestBackendError_ErrorWithoutBody(t *testing.T) {
	err := NewBackendError(http.StatusBadGateway, "")

	assert.Equal(t, "bad gateway: http 502", err.Error())
}
