package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.GET("/:id", h.getUser)
		users.PUT("/me/wallet", h.setWallet)
	}
}

type walletInput struct {
	Wallet string `json:"wallet" binding:"required"`
}

// @Summary Get current user
// @Description Get or create the launching user from Telegram init data. First launch creates the account with the default balance and energy.
// @Tags users
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.User "User document"
// @Failure 401 {object} map[string]string "Missing init data"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /users/me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	user, err := h.service.GetOrCreateUser(c.Request.Context(), identity)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security TelegramInitData
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User document"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Set withdrawal wallet
// @Description Store the TON wallet address withdrawals are sent to.
// @Tags users
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param wallet body walletInput true "Wallet address"
// @Success 204 "Wallet saved"
// @Failure 400 {object} map[string]string "Invalid address"
// @Router /users/me/wallet [put]
func (h *UserHandler) setWallet(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input walletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetWallet(c.Request.Context(), identity.ID, input.Wallet); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
