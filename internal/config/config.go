// Package config loads service settings from the environment. A .env file in
// the working directory (or its parent) is read first when present; variables
// already set in the environment win.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally configurable setting of the service.
type Config struct {
	// MongoURL is the document store connection string. A postgres:// URL
	// selects the PostgreSQL backend instead.
	MongoURL string
	DBName   string

	Port        string
	FrontendURL string

	// AdminAPIKeys guard the contact listing and blog creation routes.
	// Empty disables the guard.
	AdminAPIKeys []string

	RedisURL    string
	DemoChannel string

	RateLimitPerMinute int
	// TrustedProxyCount is how many reverse proxies append to
	// X-Forwarded-For in front of the service. 0 keys the rate limiter on
	// the connection address only.
	TrustedProxyCount int
	RequestTimeout     time.Duration
	LogLevel           string
}

// Load reads .env files (if any) and then the environment.
func Load() *Config {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() *Config {
	return &Config{
		MongoURL:           getenv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:             getenv("DB_NAME", "skolyn"),
		Port:               getenv("PORT", "8080"),
		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:3000"),
		AdminAPIKeys:       splitList(os.Getenv("ADMIN_API_KEYS")),
		RedisURL:           os.Getenv("REDIS_URL"),
		DemoChannel:        getenv("DEMO_CHANNEL", "demo_requests"),
		RateLimitPerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 30),
		TrustedProxyCount:  getenvNonNegative("TRUSTED_PROXY_COUNT", 0),
		RequestTimeout:     getenvDuration("REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:           getenv("LOG_LEVEL", "INFO"),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvNonNegative(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
