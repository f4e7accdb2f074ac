package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	MinIO    MinIOConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
	MinConns int32

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	Secret string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL uploaded objects are served from
}

type UploadConfig struct {
	MaxFileSize  int64 // bytes per file
	MaxFileCount int   // files per request
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Nonprofit CMS API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "nonprofit_cms"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       int32(getEnvInt("DB_MAX_CONNS", 25)),
			MinConns:       int32(getEnvInt("DB_MIN_CONNS", 5)),
			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("DB_RETRY_DELAY_MS", 1000)) * time.Millisecond,
			ConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_MS", 5000)) * time.Millisecond,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "nonprofit-media"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Upload: UploadConfig{
			MaxFileSize:  int64(getEnvInt("UPLOAD_MAX_FILE_MB", 10)) * 1024 * 1024,
			MaxFileCount: getEnvInt("UPLOAD_MAX_FILES", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that cannot run safely.
// Secrets have no functional default: development only tolerates the
// embedded MinIO dev credentials, production tolerates nothing.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.App.Environment == "production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		c.JWT.Secret = "dev-only-secret"
	}

	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set in production")
		}
	} else {
		if c.MinIO.AccessKey == "" {
			c.MinIO.AccessKey = "minioadmin"
		}
		if c.MinIO.SecretKey == "" {
			c.MinIO.SecretKey = "minioadmin"
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
