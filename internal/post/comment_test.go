package post

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommentsForOrdersOldestFirst(t *testing.T) {
	mock := setupMockDB(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// The database is asked for ascending creation order, whatever order
	// the rows were inserted in.
	rows := sqlmock.NewRows([]string{"id", "post_id", "author_id", "text", "created_at"}).
		AddRow("c1", "p1", "u1", "first", base).
		AddRow("c2", "p1", "u1", "second", base.Add(time.Minute)).
		AddRow("c3", "p1", "u1", "third", base.Add(2*time.Minute))
	mock.ExpectQuery(`ORDER BY created_at ASC`).WillReturnRows(rows)

	userRows := sqlmock.NewRows([]string{"id", "username"}).AddRow("u1", "alice")
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows)

	comments, err := CommentsFor("p1")

	assert.NoError(t, err)
	assert.Len(t, comments, 3)
	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt.Before(comments[i-1].CreatedAt))
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
