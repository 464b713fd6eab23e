package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "OUTPUT_DIR", "CHROME_PATH", "EXPORTS_DATABASE_URL", "ID_STRATEGY", "SNOWFLAKE_NODE",
		"LOG_LEVEL", "LOG_FORMAT", "CAPTURE_SCALE", "VIEWPORT_WIDTH", "ALLOW_CROSS_ORIGIN", "RENDER_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "resume-data/generated", cfg.OutputDir)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.Equal(t, 2.0, cfg.CaptureScale)
	assert.Equal(t, 896, cfg.ViewportWidth)
	assert.True(t, cfg.AllowCrossOrigin)
	assert.Equal(t, 60*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ID_STRATEGY", "Snowflake")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("CAPTURE_SCALE", "3")
	t.Setenv("ALLOW_CROSS_ORIGIN", "false")
	t.Setenv("RENDER_TIMEOUT", "90s")
	t.Setenv("VIEWPORT_WIDTH", "wide")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "snowflake", cfg.IDStrategy)
	assert.Equal(t, int64(7), cfg.SnowflakeNode)
	assert.Equal(t, 3.0, cfg.CaptureScale)
	assert.False(t, cfg.AllowCrossOrigin)
	assert.Equal(t, 90*time.Second, cfg.RenderTimeout)
	// unparseable values fall back
	assert.Equal(t, 896, cfg.ViewportWidth)
}
