package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/admin/service"
	usersvc "skyton-backend/internal/features/user/service"
	wmodels "skyton-backend/internal/features/withdrawal/models"
)

type AdminHandler struct {
	service service.AdminService
	users   usersvc.UserService
}

func NewAdminHandler(service service.AdminService, users usersvc.UserService) *AdminHandler {
	return &AdminHandler{
		service: service,
		users:   users,
	}
}

func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/verifications", h.listVerifications)
	admin.POST("/verifications/:userId/:taskId/approve", h.approveVerification)
	admin.POST("/verifications/:userId/:taskId/reject", h.rejectVerification)

	admin.GET("/withdrawals", h.listWithdrawals)
	admin.POST("/withdrawals/:id/approve", h.approveWithdrawal)
	admin.POST("/withdrawals/:id/reject", h.rejectWithdrawal)

	admin.PUT("/users/:id/ban", h.setBanned)
}

// @Summary List pending manual verifications (admin)
// @Tags admin
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.PendingVerification
// @Router /admin/verifications [get]
func (h *AdminHandler) listVerifications(c *gin.Context) {
	list, err := h.service.ListPendingVerifications(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) verificationParams(c *gin.Context) (int64, string, bool) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return 0, "", false
	}
	return userID, c.Param("taskId"), true
}

// @Summary Approve a manual verification (admin)
// @Description Completes the task through the same primitive the auto path uses: flag set, reward credited, pending entry cleared.
// @Tags admin
// @Security TelegramInitData
// @Param userId path int true "User ID"
// @Param taskId path string true "Task ID"
// @Success 204 "Approved"
// @Failure 404 {object} map[string]string "User or task not found"
// @Router /admin/verifications/{userId}/{taskId}/approve [post]
func (h *AdminHandler) approveVerification(c *gin.Context) {
	userID, taskID, ok := h.verificationParams(c)
	if !ok {
		return
	}
	if err := h.service.ApproveVerification(c.Request.Context(), userID, taskID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject a manual verification (admin)
// @Description Removes the pending entry without reward; the task may be re-requested.
// @Tags admin
// @Security TelegramInitData
// @Param userId path int true "User ID"
// @Param taskId path string true "Task ID"
// @Success 204 "Rejected"
// @Failure 404 {object} map[string]string "No such pending verification"
// @Router /admin/verifications/{userId}/{taskId}/reject [post]
func (h *AdminHandler) rejectVerification(c *gin.Context) {
	userID, taskID, ok := h.verificationParams(c)
	if !ok {
		return
	}
	if err := h.service.RejectVerification(c.Request.Context(), userID, taskID); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List withdrawals by status (admin)
// @Tags admin
// @Produce json
// @Security TelegramInitData
// @Param status query string false "Status filter" default(pending)
// @Success 200 {array} models.Withdrawal
// @Router /admin/withdrawals [get]
func (h *AdminHandler) listWithdrawals(c *gin.Context) {
	status := wmodels.Status(c.DefaultQuery("status", string(wmodels.StatusPending)))

	list, err := h.service.ListWithdrawals(c.Request.Context(), status)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Approve a withdrawal (admin)
// @Description Debits the user's balance and stamps the approval. Terminal: a resolved request cannot be resolved again.
// @Tags admin
// @Security TelegramInitData
// @Param id path string true "Withdrawal ID"
// @Success 204 "Approved"
// @Failure 409 {object} map[string]string "Already resolved or insufficient funds"
// @Router /admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) approveWithdrawal(c *gin.Context) {
	if err := h.service.ApproveWithdrawal(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject a withdrawal (admin)
// @Tags admin
// @Security TelegramInitData
// @Param id path string true "Withdrawal ID"
// @Success 204 "Rejected"
// @Failure 409 {object} map[string]string "Already resolved"
// @Router /admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) rejectWithdrawal(c *gin.Context) {
	if err := h.service.RejectWithdrawal(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type banInput struct {
	Banned bool `json:"banned"`
}

// @Summary Ban or unban a user (admin)
// @Tags admin
// @Accept json
// @Security TelegramInitData
// @Param id path int true "User ID"
// @Param ban body banInput true "Ban flag"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id}/ban [put]
func (h *AdminHandler) setBanned(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var input banInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.SetBanned(c.Request.Context(), id, input.Banned); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
