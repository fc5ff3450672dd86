package middleware

import (
	"net/http"

	"gamepal/internal/domain"

	"github.com/gin-gonic/gin"
)

// StaffRequired checks that the authenticated user is an admin or moderator.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		r := role.(string)
		if r != domain.RoleAdmin && r != domain.RoleModerator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}
