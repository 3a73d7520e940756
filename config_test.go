package flog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FLOG_BASE_URL", "https://db.example.com")
	t.Setenv("FLOG_ANON_KEY", "anon-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://db.example.com", cfg.BaseURL)
	assert.Equal(t, "anon-key", cfg.AnonKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
	assert.Equal(t, "food-images", cfg.Bucket)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FLOG_BASE_URL", "https://db.example.com")
	t.Setenv("FLOG_ANON_KEY", "anon-key")
	t.Setenv("FLOG_DEVICE_ID", "device-1")
	t.Setenv("FLOG_NETWORK_TIMEOUT", "5s")
	t.Setenv("FLOG_RETRY_ATTEMPTS", "5")
	t.Setenv("FLOG_RETRY_DELAY", "500ms")
	t.Setenv("FLOG_BUCKET", "staging-images")
	t.Setenv("FLOG_MAX_UPLOAD_SIZE", "1048576")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "device-1", cfg.DeviceID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, "staging-images", cfg.Bucket)
	assert.Equal(t, int64(1<<20), cfg.MaxUploadSize)
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	t.Setenv("FLOG_BASE_URL", "")
	t.Setenv("FLOG_ANON_KEY", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}
