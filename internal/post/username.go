package post

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

// GetProfile GET /api/users/:username
// Owners see every post on their own profile, drafts and scheduled ones
// included; everyone else gets the public listing rule.
func GetProfile(c *gin.Context) {
	username := c.Param("username")

	var u user.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Loading user failed"})
		}
		return
	}

	viewerID := c.GetString("user_id")

	var base *gorm.DB
	if user.IsSelf(viewerID, u.ID) {
		base = database.DB.Where("posts.author_id = ?", u.ID)
	} else {
		base = database.DB.Scopes(Published(time.Now())).Where("posts.author_id = ?", u.ID)
	}

	posts, meta, err := List(base, c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing failed"})
		logs.LogError("Profile listing failed", err, map[string]interface{}{
			"route":    c.FullPath(),
			"username": username,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
		},
		"posts":      posts,
		"pagination": meta,
	})
}
