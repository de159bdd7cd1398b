package post

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronicle-blog/chronicle-back/internal/category"
	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/location"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
	"github.com/chronicle-blog/chronicle-back/internal/storage"
)

var validImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

func detailPath(postID string) string {
	return fmt.Sprintf("/api/posts/%s", postID)
}

// GetIndex GET /api/posts
func GetIndex(c *gin.Context) {
	base := database.DB.Scopes(Published(time.Now()))

	posts, meta, err := List(base, c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing failed"})
		logs.LogError("Index listing failed", err, map[string]interface{}{"route": c.FullPath()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": meta,
	})
}

// GetCategoryPosts GET /api/categories/:slug
func GetCategoryPosts(c *gin.Context) {
	slug := c.Param("slug")

	var cat category.Category
	err := database.DB.Where("slug = ? AND is_published = ?", slug, true).First(&cat).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	base := database.DB.Scopes(Published(time.Now())).Where("posts.category_id = ?", cat.ID)

	posts, meta, err := List(base, c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing failed"})
		logs.LogError("Category listing failed", err, map[string]interface{}{
			"route": c.FullPath(),
			"slug":  slug,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   cat,
		"posts":      posts,
		"pagination": meta,
	})
}

// GetPost GET /api/posts/:id
func GetPost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	var p Post
	err := database.DB.
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&p, "id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Loading post failed"})
		}
		return
	}

	// Authors may preview their own drafts and scheduled posts.
	if !p.VisibleTo(viewerID, time.Now()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comments, err := CommentsFor(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Loading comments failed"})
		logs.LogError("Loading comments failed", err, map[string]interface{}{
			"route":  c.FullPath(),
			"postID": postID,
		})
		return
	}
	p.CommentCount = int64(len(comments))

	c.JSON(http.StatusOK, gin.H{
		"post":     p,
		"comments": comments,
	})
}

// CreatePost POST /api/posts
func CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	title := strings.TrimSpace(c.PostForm("title"))
	text := strings.TrimSpace(c.PostForm("text"))

	fieldErrors := gin.H{}
	if title == "" {
		fieldErrors["title"] = "required"
	}
	if text == "" {
		fieldErrors["text"] = "required"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrors})
		return
	}

	// Publication date defaults to now; a future date schedules the post.
	pubDate := time.Now()
	if raw := c.PostForm("pub_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"pub_date": "must be RFC3339"}})
			return
		}
		pubDate = parsed
	}

	isPublished := true
	if raw, ok := c.GetPostForm("is_published"); ok {
		isPublished = raw == "true"
	}

	var categoryID *string
	if raw := c.PostForm("category_id"); raw != "" {
		var cat category.Category
		if err := database.DB.First(&cat, "id = ?", raw).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"category_id": "unknown category"}})
			return
		}
		categoryID = &cat.ID
	}

	var locationID *string
	if raw := c.PostForm("location_id"); raw != "" {
		var loc location.Location
		if err := database.DB.First(&loc, "id = ?", raw).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"location_id": "unknown location"}})
			return
		}
		locationID = &loc.ID
	}

	postID := uuid.New().String()

	imageURL, err := resolveImage(c, postID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"image": err.Error()}})
		return
	}

	newPost := Post{
		ID:          postID,
		CreatedAt:   time.Now(),
		Title:       title,
		Text:        text,
		PubDate:     pubDate,
		IsPublished: isPublished,
		ImageURL:    imageURL,
		AuthorID:    userID,
		CategoryID:  categoryID,
		LocationID:  locationID,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Post creation failed"})
		logs.LogError("Post creation failed", err, map[string]interface{}{
			"route":  c.FullPath(),
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": newPost})
}

// UpdatePost PATCH /api/posts/:id
func UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// A denied edit sends the viewer back to the post instead of a 403.
	if !CanModify(userID, p.AuthorID) {
		c.Redirect(http.StatusSeeOther, detailPath(postID))
		return
	}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" {
		p.Title = title
	}
	if text := strings.TrimSpace(c.PostForm("text")); text != "" {
		p.Text = text
	}
	if raw := c.PostForm("pub_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"pub_date": "must be RFC3339"}})
			return
		}
		p.PubDate = parsed
	}
	if raw, ok := c.GetPostForm("is_published"); ok {
		p.IsPublished = raw == "true"
	}
	if raw, ok := c.GetPostForm("category_id"); ok {
		if raw == "" {
			p.CategoryID = nil
		} else {
			var cat category.Category
			if err := database.DB.First(&cat, "id = ?", raw).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"category_id": "unknown category"}})
				return
			}
			p.CategoryID = &cat.ID
		}
	}
	if raw, ok := c.GetPostForm("location_id"); ok {
		if raw == "" {
			p.LocationID = nil
		} else {
			var loc location.Location
			if err := database.DB.First(&loc, "id = ?", raw).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"location_id": "unknown location"}})
				return
			}
			p.LocationID = &loc.ID
		}
	}

	newImageURL, err := resolveImage(c, p.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"image": err.Error()}})
		return
	}
	if newImageURL != "" {
		if p.ImageURL != "" && p.ImageURL != newImageURL {
			if err := storage.DeleteFromS3("posts/" + filepath.Base(p.ImageURL)); err != nil {
				logs.LogError("Stale image cleanup failed", err, map[string]interface{}{
					"route":  c.FullPath(),
					"postID": p.ID,
				})
			}
		}
		p.ImageURL = newImageURL
	}

	if err := database.DB.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Post update failed"})
		logs.LogError("Post update failed", err, map[string]interface{}{
			"route":  c.FullPath(),
			"postID": p.ID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": p})
}

// DeletePost DELETE /api/posts/:id
func DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !CanModify(userID, p.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author may delete this post"})
		return
	}

	if p.ImageURL != "" {
		if err := storage.DeleteFromS3("posts/" + filepath.Base(p.ImageURL)); err != nil {
			logs.LogError("Image cleanup failed", err, map[string]interface{}{
				"route":  c.FullPath(),
				"postID": p.ID,
			})
		}
	}

	// Comments go with the post via the FK cascade.
	if err := database.DB.Delete(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Post deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// resolveImage handles the optional post image: either an uploaded file or
// a remote URL to import. Returns "" when neither is present.
func resolveImage(c *gin.Context, postID string) (string, error) {
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !validImageExtensions[ext] {
			return "", fmt.Errorf("unsupported file extension")
		}

		filename := fmt.Sprintf("post_%s%s", postID, ext)
		contentType := header.Header.Get("Content-Type")

		url, err := storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			return "", fmt.Errorf("image upload failed")
		}
		return url, nil
	}

	if srcURL := c.PostForm("image_url"); srcURL != "" {
		ext := strings.ToLower(filepath.Ext(srcURL))
		if !validImageExtensions[ext] {
			ext = ".jpg"
		}
		filename := fmt.Sprintf("post_%s%s", postID, ext)

		url, err := storage.UploadFromURL(srcURL, filename, "posts")
		if err != nil {
			return "", fmt.Errorf("image import failed")
		}
		return url, nil
	}

	return "", nil
}

// CreateComment POST /api/posts/:id/comments
func CreateComment(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// An empty comment is dropped silently: back to the post, nothing
	// persisted, no error surfaced.
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.Redirect(http.StatusSeeOther, detailPath(postID))
		return
	}

	comment := Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Comment creation failed"})
		logs.LogError("Comment creation failed", err, map[string]interface{}{
			"route":  c.FullPath(),
			"postID": postID,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment PATCH /api/comments/:id
func UpdateComment(c *gin.Context) {
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	var comment Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if !CanModify(userID, comment.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author may edit this comment"})
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"text": "required"}})
		return
	}

	// Only the text is mutable; created_at stays as it was.
	comment.Text = text
	if err := database.DB.Model(&comment).Update("text", text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Comment update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment DELETE /api/comments/:id
func DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	var comment Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if !CanModify(userID, comment.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author may delete this comment"})
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Comment deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
