package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer-token checks.
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Extraction
	MaxPDFPages int

	// Job state
	JobTTL time.Duration

	// Storage. Empty keeps outlines in memory only.
	DataDir string

	// Page numbering override for every document.
	ZeroBasedPages bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("DOCOUTLINE_PORT", "8090"),

		APIKey: os.Getenv("DOCOUTLINE_API_KEY"),

		WorkerCount:  envInt("DOCOUTLINE_WORKER_COUNT", 4),
		MaxQueueSize: envInt("DOCOUTLINE_MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("DOCOUTLINE_MAX_UPLOAD_BYTES", 52428800), // 50MB

		MaxPDFPages: envInt("DOCOUTLINE_MAX_PDF_PAGES", 200),

		JobTTL: envDuration("DOCOUTLINE_JOB_TTL", 1*time.Hour),

		DataDir: os.Getenv("DOCOUTLINE_DATA_DIR"),

		ZeroBasedPages: envBool("DOCOUTLINE_ZERO_BASED_PAGES", false),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxPDFPages <= 0 {
		cfg.MaxPDFPages = 200
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
