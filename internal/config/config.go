package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream
	APIURL          string
	AuthURL         string
	UpstreamTimeout time.Duration

	// Redis
	RedisURL string

	// View cache
	CacheTTL time.Duration

	// Cache warming
	WorkerCount    int
	QueueSize      int
	WarmInterval   time.Duration
	WarmDepth      int
	DebounceWindow time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		CacheTTL:        getEnvDuration("CACHE_TTL", 5*time.Minute),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		WorkerCount:    getEnvInt("WORKER_COUNT", 2),
		QueueSize:      getEnvInt("QUEUE_SIZE", 256),
		WarmInterval:   getEnvDuration("WARM_INTERVAL", 5*time.Minute),
		WarmDepth:      getEnvInt("WARM_DEPTH", 3),
		DebounceWindow: getEnvDuration("DEBOUNCE_WINDOW", 2*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.APIURL, err = getEnvRequired("AQT_API_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}
	// The auth provider usually lives next to the API
	cfg.AuthURL = getEnv("AQT_AUTH_URL", cfg.APIURL)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
