package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		rows     *sqlmock.Rows
		expected bool
	}{
		{
			name:     "admin user",
			userID:   "admin1",
			rows:     sqlmock.NewRows([]string{"is_admin"}).AddRow(true),
			expected: true,
		},
		{
			name:     "regular user",
			userID:   "user1",
			rows:     sqlmock.NewRows([]string{"is_admin"}).AddRow(false),
			expected: false,
		},
		{
			name:     "unknown user",
			userID:   "ghost",
			rows:     sqlmock.NewRows([]string{"is_admin"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := setupMockDB(t)
			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.rows)

			isAdmin, err := IsAdmin(tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, isAdmin)
		})
	}
}

func TestExistsByUsername(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	assert.True(t, ExistsByUsername("alice"))
}
