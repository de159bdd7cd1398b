package location

import "time"

type Location struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	IsPublished bool      `json:"is_published"`
}
