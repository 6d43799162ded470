package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_USERS", "")
	t.Setenv("TEST_MODE", "")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Empty(t, cfg.AdminUsers)
	assert.False(t, cfg.TestMode)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite:/tmp/brewlog.db")
	t.Setenv("ADMIN_USERS", " alice , bob,,")
	t.Setenv("TEST_MODE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite:/tmp/brewlog.db", cfg.Database.URL)
	assert.Equal(t, []string{"alice", "bob"}, cfg.AdminUsers)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.TestMode)
}
