package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
)

// UpdateProfile PATCH /api/users/:username
// The record being edited is always the requester's own, whatever the URL
// says. A mismatched username in the path is logged and otherwise ignored.
func UpdateProfile(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if param := c.Param("username"); param != "" && param != u.Username {
		logs.LogJSON(logs.LevelWarn, "Profile edit URL names another user", map[string]interface{}{
			"route":  route,
			"userID": userID,
			"param":  param,
		})
	}

	if firstName := strings.TrimSpace(c.PostForm("first_name")); firstName != "" {
		u.FirstName = firstName
	}
	if lastName := strings.TrimSpace(c.PostForm("last_name")); lastName != "" {
		u.LastName = lastName
	}
	if email := strings.TrimSpace(c.PostForm("email")); email != "" && email != u.Email {
		var count int64
		database.DB.Model(&User{}).Where("email = ? AND id <> ?", email, u.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		u.Email = email
	}

	if err := database.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile update failed"})
		logs.LogError("Profile update failed", err, map[string]interface{}{
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
