package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings for the gateway and the processor.
// Everything is sourced from the environment with sensible defaults so the
// binaries run out of the box against a local Redis and processor.
type Config struct {
	Host string
	Port string

	// Upload handling
	MaxUploadBytes int64
	AllowedFormats []string

	// Result cache
	RedisAddr string
	CacheTTL  time.Duration

	// Computation backend
	BackendAddress    string
	GRPCListenAddress string
	AnalysisTimeout   time.Duration

	RequestTimeout time.Duration
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:              getEnvOrDefault("HOST", "0.0.0.0"),
		Port:              getEnvOrDefault("PORT", "8080"),
		MaxUploadBytes:    parseIntOrDefault("MAX_CONTENT_LENGTH", 5*1024*1024), // 5MB
		AllowedFormats:    parseFormats(getEnvOrDefault("ALLOWED_IMAGE_FORMATS", "PNG,JPEG")),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		CacheTTL:          parseDurationOrDefault("CACHE_TTL", 86400*time.Second),
		BackendAddress:    getEnvOrDefault("GRPC_SERVER_ADDRESS", "localhost:50051"),
		GRPCListenAddress: getEnvOrDefault("GRPC_LISTEN_ADDRESS", ":50051"),
		AnalysisTimeout:   parseDurationOrDefault("ANALYSIS_TIMEOUT", 20*time.Second),
		RequestTimeout:    parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_CONTENT_LENGTH must be > 0 (got %d)", cfg.MaxUploadBytes)
	}
	if len(cfg.AllowedFormats) == 0 {
		return nil, fmt.Errorf("ALLOWED_IMAGE_FORMATS must name at least one format")
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be > 0 (got %s)", cfg.CacheTTL)
	}
	if cfg.AnalysisTimeout <= 0 || cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got analysis=%s, request=%s)",
			cfg.AnalysisTimeout, cfg.RequestTimeout)
	}
	return cfg, nil
}

// parseFormats normalizes a comma-separated allow-list to uppercase names,
// e.g. "png, jpeg" -> ["PNG", "JPEG"].
func parseFormats(raw string) []string {
	parts := strings.Split(raw, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.ToUpper(strings.TrimSpace(p)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDurationOrDefault accepts either a Go duration ("24h") or a bare
// number of seconds ("86400").
func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
