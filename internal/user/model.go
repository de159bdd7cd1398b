package user

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username" gorm:"uniqueIndex"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"-"`
}

// IsSelf reports whether the viewer is the given user. Profile edits are
// gated on this; an anonymous viewer is never "self".
func IsSelf(viewerID, targetID string) bool {
	return viewerID != "" && viewerID == targetID
}
