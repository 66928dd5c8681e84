package middleware

import (
	"github.com/gin-gonic/gin"
)

// Identity copies the caller identity forwarded by the front gateway into the
// gin context. Authentication itself happens upstream; this service only
// consumes the resolved role and display name.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set("user_role", role)
		}
		if name := c.GetHeader("X-User-Name"); name != "" {
			c.Set("user_name", name)
		}
		c.Next()
	}
}
