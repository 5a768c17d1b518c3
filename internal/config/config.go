package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Logging     LoggingConfig
	Environment string
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type StoreConfig struct {
	Dir  string
	File string
}

type RateLimitConfig struct {
	PublicPerMinute int
	WritePerMinute  int
}

type CORSConfig struct {
	AllowAllOrigins bool
	AllowedOrigins  []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables. Every setting has
// a development-friendly default; nothing is required.
//
// The server refuses ENVIRONMENT=production outright: the dev token
// scheme is not an authentication system, and this store must never sit
// in front of real traffic.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "127.0.0.1"),
			Port:    getEnvInt("SERVER_PORT", 8080),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Store: StoreConfig{
			Dir:  getEnv("DATA_DIR", "data"),
			File: getEnv("EVENTS_FILE", "events.json"),
		},
		RateLimit: RateLimitConfig{
			PublicPerMinute: getEnvInt("RATE_LIMIT_PUBLIC", 300),
			WritePerMinute:  getEnvInt("RATE_LIMIT_WRITE", 120),
		},
		CORS: CORSConfig{
			AllowAllOrigins: getEnvBool("CORS_ALLOW_ALL", true),
			AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if strings.EqualFold(cfg.Environment, "production") {
		return Config{}, fmt.Errorf("this server is development-only and refuses ENVIRONMENT=production")
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		cfg.CORS.AllowAllOrigins = false
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
