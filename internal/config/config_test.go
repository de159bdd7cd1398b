package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "postgres://localhost/blog", cfg.DBUrl)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadConfigAddrOverride(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")

	cfg := LoadConfig()

	assert.Equal(t, ":9000", cfg.Addr)
}
