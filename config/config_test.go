package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://site:pw@localhost:5432/site")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 2, cfg.Database.MinConns)
	assert.False(t, cfg.Database.Offline)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_OfflineWhenURLMissing(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Database.Offline)
}

func TestLoad_OfflineOnPlaceholderURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/fallback")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Database.Offline)
}

func TestLoad_ExplicitOfflineMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://site:pw@localhost:5432/site")
	t.Setenv("SITE_OFFLINE_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Database.Offline)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://site:pw@localhost:5432/site")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com, https://example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://admin.example.com", "https://example.com"}, cfg.Server.CORSOrigins)
}
