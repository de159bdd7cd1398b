package category

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
)

// GetCategories GET /api/categories
func GetCategories(c *gin.Context) {
	var categories []Category
	err := database.DB.Where("is_published = ?", true).Order("title ASC").Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing categories failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory POST /api/admin/categories
func CreateCategory(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"title": "required"}})
		return
	}

	catSlug := strings.TrimSpace(c.PostForm("slug"))
	if catSlug == "" {
		catSlug = slug.Make(title)
	}
	if !slug.IsSlug(catSlug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"slug": "not a valid slug"}})
		return
	}

	var count int64
	database.DB.Model(&Category{}).Where("slug = ?", catSlug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	}

	isPublished := true
	if raw, ok := c.GetPostForm("is_published"); ok {
		isPublished = raw == "true"
	}

	cat := Category{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Title:       title,
		Description: c.PostForm("description"),
		Slug:        catSlug,
		IsPublished: isPublished,
	}

	if err := database.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Category creation failed"})
		logs.LogError("Category creation failed", err, map[string]interface{}{"route": c.FullPath()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

// UpdateCategory PATCH /api/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var cat Category
	if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" {
		cat.Title = title
	}
	if desc, ok := c.GetPostForm("description"); ok {
		cat.Description = desc
	}
	if raw := strings.TrimSpace(c.PostForm("slug")); raw != "" && raw != cat.Slug {
		if !slug.IsSlug(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"slug": "not a valid slug"}})
			return
		}
		var count int64
		database.DB.Model(&Category{}).Where("slug = ? AND id <> ?", raw, cat.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
			return
		}
		cat.Slug = raw
	}
	if raw, ok := c.GetPostForm("is_published"); ok {
		cat.IsPublished = raw == "true"
	}

	if err := database.DB.Save(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Category update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": cat})
}

// DeleteCategory DELETE /api/admin/categories/:id
// Posts keep existing with a null category; the FK action handles that.
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var cat Category
	if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Category deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
