package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, 30*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 30, cfg.FeedRequestsPerMinute)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CRICKET_FEED_URL", "http://localhost:9999/feed.xml")
	t.Setenv("FEED_TIMEOUT_SECONDS", "5")
	t.Setenv("API_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/feed.xml", cfg.FeedURL)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadRejectsBadFeedURL(t *testing.T) {
	t.Setenv("CRICKET_FEED_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
}

func TestPortFallsBackToPORT(t *testing.T) {
	t.Setenv("PORT", "3001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.APIPort)
}
