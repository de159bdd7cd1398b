package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-blog/chronicle-back/internal/logs"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

// AdminOnlyMiddleware restricts a route group to administrators.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		userID := c.GetString("user_id")

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			logs.LogJSON(logs.LevelWarn, "Unauthenticated user tried admin route", map[string]interface{}{
				"route": route,
			})
			return
		}

		isAdmin, err := user.IsAdmin(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Admin check failed"})
			logs.LogError("Admin check failed", err, map[string]interface{}{
				"route":  route,
				"userID": userID,
			})
			return
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrators only"})
			logs.LogJSON(logs.LevelWarn, "Non-admin user blocked from admin route", map[string]interface{}{
				"route":  route,
				"userID": userID,
			})
			return
		}

		c.Next()
	}
}
