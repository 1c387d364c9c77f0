package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/drinkshop")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "./uploads", cfg.UploadDir)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_AdminEmailsNormalized(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/drinkshop")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_EMAILS", "Owner@Shop.com, staff@shop.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@shop.com", "staff@shop.com"}, cfg.AdminEmails)
}
