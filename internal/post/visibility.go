package post

import (
	"time"

	"gorm.io/gorm"
)

// Published restricts a post query to what the public may see: the post is
// published, its publication date is not in the future, and its category,
// when set, is published. A post without a category stays visible, and the
// location flag never hides a post.
func Published(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}

// Visible applies the same rule to a single loaded post.
func (p *Post) Visible(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.Category != nil && !p.Category.IsPublished {
		return false
	}
	return true
}

// VisibleTo is the detail-page rule: authors always see their own posts,
// including drafts and scheduled ones; everyone else gets the public rule.
func (p *Post) VisibleTo(viewerID string, now time.Time) bool {
	if viewerID != "" && viewerID == p.AuthorID {
		return true
	}
	return p.Visible(now)
}
