package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// DB
	MongoURL string
	Database string
	Store    string // "mongo" or "memory"

	// Sessions
	SessionTTL time.Duration

	// HTTP
	Addr           string
	RequestTimeout time.Duration
	RateLimit      int
	AllowedOrigins []string

	Environment string
	LogLevel    string
}

func Load() Config {
	return Config{
		MongoURL: getenv("MONGO_URL", "mongodb://localhost:27017"),
		Database: getenv("MONGO_DATABASE", "gym_tracker"),
		Store:    getenv("STORE", "mongo"),

		SessionTTL: getdur("SESSION_TTL", 168*time.Hour),

		Addr:           getenv("ADDR", ":3000"),
		RequestTimeout: getdur("REQUEST_TIMEOUT", 30*time.Second),
		RateLimit:      getint("RATE_LIMIT", 100),
		AllowedOrigins: getlist("CORS_ORIGINS", []string{"*"}),

		Environment: getenv("ENVIRONMENT", "dev"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getlist(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
