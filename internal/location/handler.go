package location

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chronicle-blog/chronicle-back/internal/database"
)

// GetLocations GET /api/locations
func GetLocations(c *gin.Context) {
	var locations []Location
	err := database.DB.Where("is_published = ?", true).Order("name ASC").Find(&locations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing locations failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// CreateLocation POST /api/admin/locations
func CreateLocation(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"name": "required"}})
		return
	}

	isPublished := true
	if raw, ok := c.GetPostForm("is_published"); ok {
		isPublished = raw == "true"
	}

	loc := Location{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Name:        name,
		IsPublished: isPublished,
	}

	if err := database.DB.Create(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Location creation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

// UpdateLocation PATCH /api/admin/locations/:id
func UpdateLocation(c *gin.Context) {
	id := c.Param("id")

	var loc Location
	if err := database.DB.First(&loc, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		loc.Name = name
	}
	if raw, ok := c.GetPostForm("is_published"); ok {
		loc.IsPublished = raw == "true"
	}

	if err := database.DB.Save(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Location update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": loc})
}

// DeleteLocation DELETE /api/admin/locations/:id
// Dependent posts keep existing with a null location.
func DeleteLocation(c *gin.Context) {
	id := c.Param("id")

	var loc Location
	if err := database.DB.First(&loc, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	if err := database.DB.Delete(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Location deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
