// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type StorageConfig struct {
	Driver string

	// local driver
	LocalDir        string
	LocalPublicBase string

	// s3 driver
	S3Bucket          string
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURLBase   string
}

type Config struct {
	Port        int
	GRPCPort    int
	Environment string
	LogLevel    string
	LogPretty   bool
	CORSOrigins []string

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	Storage StorageConfig

	// When set, UpdateStatus enforces the release transition table instead
	// of accepting any status order.
	ReleaseStrictTransitions bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		GRPCPort:    getEnvInt("GRPC_PORT", 50051),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvBool("LOG_PRETTY", false),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBDatabase: os.Getenv("DB_DATABASE"),

		Storage: StorageConfig{
			Driver:            getEnv("STORAGE_DRIVER", StorageDriverLocal),
			LocalDir:          getEnv("STORAGE_LOCAL_DIR", "storage"),
			LocalPublicBase:   getEnv("STORAGE_PUBLIC_BASE", "/api/uploads"),
			S3Bucket:          os.Getenv("S3_BUCKET"),
			S3Endpoint:        os.Getenv("S3_ENDPOINT"),
			S3Region:          getEnv("S3_REGION", "us-east-1"),
			S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			S3PublicURLBase:   os.Getenv("S3_PUBLIC_URL_BASE"),
		},

		ReleaseStrictTransitions: getEnvBool("RELEASE_STRICT_TRANSITIONS", false),
	}

	// Public objects default to endpoint/bucket when no CDN base is set.
	if cfg.Storage.Driver == StorageDriverS3 && cfg.Storage.S3PublicURLBase == "" {
		cfg.Storage.S3PublicURLBase = fmt.Sprintf("%s/%s",
			strings.TrimSuffix(cfg.Storage.S3Endpoint, "/"), cfg.Storage.S3Bucket)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBUsername == "" {
		return fmt.Errorf("DB_USERNAME is required")
	}
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 storage driver")
		}
		if c.Storage.S3AccessKeyID == "" || c.Storage.S3SecretAccessKey == "" {
			return fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

// DSN builds the pgx connection string from the discrete DB fields.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBDatabase,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
