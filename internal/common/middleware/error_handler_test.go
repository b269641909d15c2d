package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyton-backend/internal/common/apperr"
)

func respond(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondErrorTypedMessage(t *testing.T) {
	status, body := respond(t, apperr.New(apperr.CodeConflict, "already checked in today"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "already checked in today", body["error"])
	assert.Equal(t, string(apperr.CodeConflict), body["code"])
	assert.Equal(t, false, body["retryable"])
}

func TestRespondErrorWrappedTypedMessage(t *testing.T) {
	// A typed error wrapped by a caller must still surface its own
	// message, not the generic 500 text.
	wrapped := fmt.Errorf("verify handler: %w", apperr.New(apperr.CodeNotFound, "task t1 not found"))

	status, body := respond(t, wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "task t1 not found", body["error"])
	assert.Equal(t, string(apperr.CodeNotFound), body["code"])
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	status, body := respond(t, errors.New("pipe burst at 0x7f"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestRespondErrorStoreErrorRetryable(t *testing.T) {
	status, body := respond(t, apperr.New(apperr.CodeStoreError, "tx aborted"))

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Temporary storage failure, please retry", body["error"])
	assert.Equal(t, true, body["retryable"])
}
