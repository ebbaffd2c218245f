package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NAMITJAIN06/bite-learning/internal/config"
)

// clearEnv снимает переменные, которые могли прийти из окружения CI.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var allKeys = []string{
	"APP_ENV", "APP_PORT", "PORT", "DATA_FILE", "CORS_ORIGINS",
	"LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
	"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	"S3_USE_SSL", "S3_PATH_STYLE", "S3_SNAPSHOT_KEY",
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":5000", cfg.AppPort)
	assert.Equal(t, "videos-data.json", cfg.DataFile)
	assert.Equal(t, []string{"*"}, cfg.CORSOriginsList())
	assert.Equal(t, "snapshots/videos-data.json", cfg.S3SnapshotKey)
	assert.Equal(t, 50, cfg.LogMaxSizeMB)
	assert.False(t, cfg.MirrorEnabled())
	assert.Contains(t, cfg.String(), "S3: (disabled)")
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("PORT", "9999")
	t.Setenv("DATA_FILE", "/tmp/data.json")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_BUCKET", "videos")
	t.Setenv("S3_ACCESS_KEY", "minio")
	t.Setenv("S3_SECRET_KEY", "minio-secret")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("LOG_MAX_BACKUPS", "2")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "/tmp/data.json", cfg.DataFile)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOriginsList())
	assert.True(t, cfg.MirrorEnabled())
	assert.True(t, cfg.S3UseSSL)
	assert.Equal(t, 2, cfg.LogMaxBackups)

	s := cfg.String()
	assert.NotContains(t, s, "minio-secret")
	assert.Contains(t, s, "S3SecretKey: ********")
}

func TestLoadFromEnvBarePort(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("PORT", "3001")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.AppPort)
}
