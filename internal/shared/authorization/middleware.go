package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff gates ticket-operating routes to admin and receptionist
// roles. The user role is placed in the gin context by the identity layer,
// which is an external collaborator of this service.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates administrative routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
