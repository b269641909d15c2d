package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(New(CodeNotFound, "missing")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("raw")))
	assert.Equal(t, CodeInternal, CodeOf(nil))

	// Wrapped typed errors keep their code through fmt wrapping.
	wrapped := fmt.Errorf("handler: %w", New(CodeConflict, "busy"))
	assert.Equal(t, CodeConflict, CodeOf(wrapped))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeStoreError, "redis get")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORE_ERROR")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(CodeStoreError, "tx aborted")))

	for _, code := range []Code{CodeNotFound, CodeConflict, CodeInvalidInput, CodeConfigError, CodeUnverified, CodeUnauthorized, CodeForbidden, CodeInternal} {
		assert.False(t, Retryable(New(code, "x")), string(code))
	}
	assert.False(t, Retryable(errors.New("raw")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeUnverified, http.StatusUnprocessableEntity},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeStoreError, http.StatusServiceUnavailable},
		{CodeConfigError, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(New(tt.code, "x")), string(tt.code))
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("raw")))
}
