package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	OutputDir string
	// ChromePath overrides the Chrome binary used for captures.
	ChromePath         string
	ExportsDatabaseURL string
	IDStrategy         string
	SnowflakeNode      int64
	LogLevel           string
	LogFormat          string
	CaptureScale       float64
	ViewportWidth      int
	AllowCrossOrigin   bool
	RenderTimeout      time.Duration
}

// Load reads the configuration from the environment, after loading a
// .env file from the working directory when there is one.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "3000"),
		OutputDir:          getEnv("OUTPUT_DIR", "resume-data/generated"),
		ChromePath:         getEnv("CHROME_PATH", ""),
		ExportsDatabaseURL: getEnv("EXPORTS_DATABASE_URL", ""),
		IDStrategy:         strings.ToLower(getEnv("ID_STRATEGY", "uuid")),
		SnowflakeNode:      int64(getEnvInt("SNOWFLAKE_NODE", 1)),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		CaptureScale:       getEnvFloat("CAPTURE_SCALE", 2),
		ViewportWidth:      getEnvInt("VIEWPORT_WIDTH", 896),
		AllowCrossOrigin:   getEnvBool("ALLOW_CROSS_ORIGIN", true),
		RenderTimeout:      getEnvDuration("RENDER_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
