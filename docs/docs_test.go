package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderedDocCoversRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                 `json:"basePath"`
		Paths       map[string]interface{} `json:"paths"`
		Definitions map[string]interface{} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)

	for _, route := range []string{
		"/users/me",
		"/users/me/wallet",
		"/users/{id}",
		"/tasks",
		"/tasks/{id}/verify",
		"/checkin",
		"/referrals",
		"/withdrawals",
		"/admin/tasks",
		"/admin/tasks/{id}",
		"/admin/verifications",
		"/admin/verifications/{userId}/{taskId}/approve",
		"/admin/verifications/{userId}/{taskId}/reject",
		"/admin/withdrawals",
		"/admin/withdrawals/{id}/approve",
		"/admin/withdrawals/{id}/reject",
		"/admin/users/{id}/ban",
	} {
		assert.Contains(t, doc.Paths, route)
	}

	for _, def := range []string{
		"models.User",
		"models.Task",
		"models.Withdrawal",
		"models.PendingVerification",
		"models.VerifyResult",
		"models.CheckInResult",
		"service.CreateTaskInput",
	} {
		assert.Contains(t, doc.Definitions, def)
	}
}
