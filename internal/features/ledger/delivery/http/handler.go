package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/ledger/service"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(service service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		service: service,
	}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/tasks/:id/verify", h.verify)
	router.POST("/checkin", h.checkIn)
}

// @Summary Verify and complete a task
// @Description Run the task's verification path: channel joins probe membership, manual tasks queue for admin review, trusted tasks complete immediately. Completing a completed task is a no-op success.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Success 200 {object} models.VerifyResult
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 409 {object} map[string]string "Task already completed (manual path)"
// @Failure 422 {object} map[string]string "Membership check failed"
// @Failure 503 {object} map[string]string "Verification provider or store unavailable, retry"
// @Router /tasks/{id}/verify [post]
func (h *LedgerHandler) verify(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	result, err := h.service.VerifyAndComplete(c.Request.Context(), identity.ID, c.Param("id"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Daily check-in
// @Description Credit the daily check-in reward. Succeeds at most once per calendar day.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.CheckInResult
// @Failure 409 {object} map[string]string "Already checked in today"
// @Failure 500 {object} map[string]string "Check-in task not configured"
// @Router /checkin [post]
func (h *LedgerHandler) checkIn(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	result, err := h.service.PerformCheckIn(c.Request.Context(), identity.ID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
