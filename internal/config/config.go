package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Report ReportConfig
	Upload UploadConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ReportConfig holds engine defaults
type ReportConfig struct {
	BaseColor     string
	MaxCategories int
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxUploadMB int64
}

// Load builds configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Report: ReportConfig{
			BaseColor:     getEnv("BASE_COLOR", "#2b6cb0"),
			MaxCategories: getEnvInt("MAX_CATEGORIES", 20),
		},
		Upload: UploadConfig{
			MaxUploadMB: int64(getEnvInt("MAX_UPLOAD_MB", 32)),
		},
	}

	if cfg.Report.MaxCategories <= 0 {
		return nil, fmt.Errorf("MAX_CATEGORIES must be positive, got %d", cfg.Report.MaxCategories)
	}
	if cfg.Upload.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.Upload.MaxUploadMB)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
