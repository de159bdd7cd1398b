package admin

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
	"github.com/chronicle-blog/chronicle-back/internal/mail"
	"github.com/chronicle-blog/chronicle-back/internal/post"
	"github.com/chronicle-blog/chronicle-back/internal/storage"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

// GetDashboardStats GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	var startDate, endDate time.Time
	var err error

	if startDateStr != "" {
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format"})
			return
		}
	} else {
		startDate = time.Now().AddDate(0, 0, -30)
	}

	if endDateStr != "" {
		endDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date format"})
			return
		}
		endDate = endDate.AddDate(0, 0, 1)
	} else {
		endDate = time.Now()
	}

	var totalUsers, totalPosts, publishedPosts, totalComments, newPosts, newComments int64

	database.DB.Model(&user.User{}).Count(&totalUsers)
	database.DB.Model(&post.Post{}).Count(&totalPosts)
	database.DB.Model(&post.Post{}).Where("is_published = ?", true).Count(&publishedPosts)
	database.DB.Model(&post.Comment{}).Count(&totalComments)
	database.DB.Model(&post.Post{}).Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newPosts)
	database.DB.Model(&post.Comment{}).Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newComments)

	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"users":           totalUsers,
			"posts":           totalPosts,
			"published_posts": publishedPosts,
			"comments":        totalComments,
		},
		"period": gin.H{
			"start":    startDate.Format("2006-01-02"),
			"end":      endDate.Format("2006-01-02"),
			"posts":    newPosts,
			"comments": newComments,
		},
	})
}

// SendTestEmail POST /api/admin/test-email
// Smoke-tests the SMTP relay configuration.
func SendTestEmail(c *gin.Context) {
	var input struct {
		To string `json:"to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient required"})
		return
	}

	err := mail.Send(input.To, "Chronicle test email", "This is a test message from the Chronicle server.")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email delivery failed"})
		logs.LogError("Test email failed", err, map[string]interface{}{
			"route": c.FullPath(),
			"to":    input.To,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}

// DeleteUser DELETE /api/admin/users/:id
// Posts and comments go with the user via the FK cascades; stored post
// images are removed from S3 first.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var u user.User
	if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var posts []post.Post
	if err := database.DB.Where("author_id = ?", u.ID).Find(&posts).Error; err == nil {
		for _, p := range posts {
			if p.ImageURL == "" {
				continue
			}
			if err := storage.DeleteFromS3("posts/" + filepath.Base(p.ImageURL)); err != nil {
				logs.LogError("Image cleanup failed", err, map[string]interface{}{
					"route":  c.FullPath(),
					"postID": p.ID,
				})
			}
		}
	}

	if err := database.DB.Delete(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
