package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/referral/service"
)

type ReferralHandler struct {
	service service.ReferralService
}

func NewReferralHandler(service service.ReferralService) *ReferralHandler {
	return &ReferralHandler{
		service: service,
	}
}

func (h *ReferralHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/referrals", h.attribute)
}

type attributeInput struct {
	ReferrerID int64 `json:"referrer_id" binding:"required"`
}

// @Summary Attribute a referral
// @Description Create the launching user's account linked to the referrer and credit the referrer once. Replays fail with 409 and change nothing.
// @Tags referrals
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param referral body attributeInput true "Referrer"
// @Success 201 {object} models.User "Created invitee document"
// @Failure 400 {object} map[string]string "Self-referral"
// @Failure 404 {object} map[string]string "Referrer not found"
// @Failure 409 {object} map[string]string "Account already exists"
// @Failure 500 {object} map[string]string "Referral task not configured"
// @Router /referrals [post]
func (h *ReferralHandler) attribute(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input attributeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Attribute(c.Request.Context(), identity, input.ReferrerID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
