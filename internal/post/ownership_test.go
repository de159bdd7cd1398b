package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name     string
		viewerID string
		authorID string
		expected bool
	}{
		{"author edits own content", "u1", "u1", true},
		{"other user denied", "u2", "u1", false},
		{"anonymous denied", "", "u1", false},
		{"anonymous denied even for empty author", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanModify(tt.viewerID, tt.authorID))
		})
	}
}
