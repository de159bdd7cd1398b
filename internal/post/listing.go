package post

import (
	"strconv"

	"gorm.io/gorm"
)

const PageSize = 10

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

const commentCountSelect = "posts.*, (SELECT count(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// ClampPage resolves a raw page parameter against the page count.
// Non-numeric input and anything below 1 land on the first page,
// overshooting lands on the last — a bad page never errors.
func ClampPage(raw string, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// TotalPages is the number of fixed-size pages needed for total items.
// An empty listing still has one (empty) page.
func TotalPages(total int64, size int) int {
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// List runs the listing pipeline over an already-scoped base query:
// comment-count annotation, newest-first ordering by publication date,
// then one fixed-size page selected by the raw page parameter.
func List(base *gorm.DB, rawPage string) ([]Post, Pagination, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Model(&Post{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pages := TotalPages(total, PageSize)
	page := ClampPage(rawPage, pages)

	var posts []Post
	err := base.Session(&gorm.Session{}).Model(&Post{}).
		Select(commentCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	meta := Pagination{
		Page:       page,
		PageSize:   PageSize,
		TotalItems: total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
	return posts, meta, nil
}
