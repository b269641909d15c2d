package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/features/user/service"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
			return
		}

		c.Next()
	}
}

// RequireAdmin admits users listed in ADMIN_IDS or flagged is_admin on
// their document. The config list works before any document exists, so the
// first operator can bootstrap the rest.
func RequireAdmin(adminIDs []int64, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
			return
		}

		for _, adminID := range adminIDs {
			if identity.ID == adminID {
				c.Next()
				return
			}
		}

		u, err := userService.GetUser(c.Request.Context(), identity.ID)
		if err == nil && u.IsAdmin {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
	}
}

// CheckBanned blocks banned accounts from every user-facing flow. Admins
// are exempt.
func CheckBanned(adminIDs []int64, userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.Next()
			return
		}

		for _, adminID := range adminIDs {
			if identity.ID == adminID {
				c.Next()
				return
			}
		}

		u, err := userService.GetUser(c.Request.Context(), identity.ID)
		if err == nil && u.IsBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your account has been banned"})
			return
		}

		c.Next()
	}
}
