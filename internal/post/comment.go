package post

import (
	"time"

	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index"`
	Post      *Post     `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  string    `json:"author_id"`
	Author    user.User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentsFor returns a post's comments oldest first, regardless of the
// order they were written in.
func CommentsFor(postID string) ([]Comment, error) {
	var comments []Comment
	err := database.DB.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
