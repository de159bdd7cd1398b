package category

import "time"

type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	IsPublished bool      `json:"is_published"`
}
