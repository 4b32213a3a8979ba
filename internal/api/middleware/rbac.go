package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// RequireRole returns middleware that checks the authenticated user's role
// against an allow-list. Admin always passes: admins administer the policy
// table and correct steps, so every role-gated surface is reachable to them.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetUserRole(c.Request.Context())
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no role in context",
			})
			return
		}

		if role == "admin" || slices.Contains(roles, role) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient permissions",
		})
	}
}
