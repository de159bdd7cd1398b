package post

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chronicle-blog/chronicle-back/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	return mock
}

func postColumns() []string {
	return []string{
		"id", "created_at", "title", "text", "pub_date", "is_published",
		"image_url", "author_id", "category_id", "location_id", "comment_count",
	}
}

func addPostRow(rows *sqlmock.Rows, id, authorID string, pubDate time.Time, published bool, commentCount int64) {
	rows.AddRow(id, pubDate, "Title "+id, "Body "+id, pubDate, published, "", authorID, nil, nil, commentCount)
}

func newTestContext(t *testing.T, method, target, form string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(form))
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	c.Request = req

	return c, w
}

func TestUpdatePostByNonAuthorRedirectsToDetail(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(postColumns())
	addPostRow(rows, "p1", "the-author", time.Now().Add(-time.Hour), true, 0)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodPatch, "/api/posts/p1", "title=Hijacked")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set("user_id", "someone-else")

	UpdatePost(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/posts/p1", w.Header().Get("Location"))
	// No UPDATE must have reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostByNonAuthorForbidden(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(postColumns())
	addPostRow(rows, "p1", "the-author", time.Now().Add(-time.Hour), true, 0)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodDelete, "/api/posts/p1", "")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set("user_id", "someone-else")

	DeletePost(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCommentByNonAuthorForbidden(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "post_id", "author_id", "text", "created_at"}).
		AddRow("c1", "p1", "the-author", "hello", time.Now())
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodDelete, "/api/comments/c1", "")
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	c.Set("user_id", "someone-else")

	DeleteComment(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The comment row was only read, never deleted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCommentByNonAuthorForbidden(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "post_id", "author_id", "text", "created_at"}).
		AddRow("c1", "p1", "the-author", "hello", time.Now())
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodPatch, "/api/comments/c1", "text=hijacked")
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	c.Set("user_id", "someone-else")

	UpdateComment(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The comment row was only read, never updated.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentWithEmptyTextRedirectsSilently(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(postColumns())
	addPostRow(rows, "p1", "the-author", time.Now().Add(-time.Hour), true, 0)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodPost, "/api/posts/p1/comments", "text=++")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set("user_id", "commenter")

	CreateComment(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/posts/p1", w.Header().Get("Location"))
	// Nothing persisted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostAuthorSeesOwnDraft(t *testing.T) {
	mock := setupMockDB(t)

	// Unpublished, future-dated: hidden from everyone but the author.
	rows := sqlmock.NewRows(postColumns())
	addPostRow(rows, "p1", "the-author", time.Now().Add(24*time.Hour), false, 0)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	userRows := sqlmock.NewRows([]string{"id", "username"}).AddRow("the-author", "alice")
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows)

	commentRows := sqlmock.NewRows([]string{"id", "post_id", "author_id", "text", "created_at"})
	mock.ExpectQuery(`SELECT`).WillReturnRows(commentRows)

	c, w := newTestContext(t, http.MethodGet, "/api/posts/p1", "")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Set("user_id", "the-author")

	GetPost(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostHidesDraftFromOthers(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows(postColumns())
	addPostRow(rows, "p1", "the-author", time.Now().Add(24*time.Hour), false, 0)
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	userRows := sqlmock.NewRows([]string{"id", "username"}).AddRow("the-author", "alice")
	mock.ExpectQuery(`SELECT`).WillReturnRows(userRows)

	c, w := newTestContext(t, http.MethodGet, "/api/posts/p1", "")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	// Anonymous viewer: no user_id in the context.

	GetPost(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
