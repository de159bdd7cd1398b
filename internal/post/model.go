package post

import (
	"time"

	"github.com/chronicle-blog/chronicle-back/internal/category"
	"github.com/chronicle-blog/chronicle-back/internal/location"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

type Post struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Text        string    `json:"text" gorm:"type:text"`
	PubDate     time.Time `json:"pub_date" gorm:"index"`
	IsPublished bool      `json:"is_published"`
	ImageURL    string    `json:"image_url,omitempty"`

	AuthorID   string             `json:"author_id" gorm:"index"`
	Author     user.User          `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID *string            `json:"category_id,omitempty"`
	Category   *category.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	LocationID *string            `json:"location_id,omitempty"`
	Location   *location.Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`

	// Filled by the listing query, never written back.
	CommentCount int64 `json:"comment_count" gorm:"->;-:migration"`
}
