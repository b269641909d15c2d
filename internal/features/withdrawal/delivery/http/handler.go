package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/withdrawal/service"
)

type WithdrawalHandler struct {
	service service.WithdrawalService
}

func NewWithdrawalHandler(service service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{
		service: service,
	}
}

func (h *WithdrawalHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/withdrawals", h.request)
	router.GET("/withdrawals", h.listOwn)
}

type requestInput struct {
	Amount int64  `json:"amount" binding:"required"`
	Wallet string `json:"wallet" binding:"required"`
}

// @Summary Request a withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param withdrawal body requestInput true "Amount and destination wallet"
// @Success 201 {object} models.Withdrawal
// @Failure 400 {object} map[string]string "Invalid amount or wallet"
// @Failure 409 {object} map[string]string "Insufficient balance"
// @Router /withdrawals [post]
func (h *WithdrawalHandler) request(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input requestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.service.Request(c.Request.Context(), identity.ID, input.Amount, input.Wallet)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

// @Summary List own withdrawals
// @Tags withdrawals
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.Withdrawal
// @Router /withdrawals [get]
func (h *WithdrawalHandler) listOwn(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	list, err := h.service.ListByUser(c.Request.Context(), identity.ID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
