package common

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Storage   StorageConfig
	Queue     QueueConfig
	Retention RetentionConfig
	Ingest    IngestConfig
	DocIntel  DocIntelConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds the per-job artifact directory layout.
type StorageConfig struct {
	Root string
}

// QueueConfig holds dispatcher, worker and monitor tuning.
type QueueConfig struct {
	MaxWorkers        int
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	StuckTimeout      time.Duration
	MaxRetries        int
}

// RetentionConfig holds artifact purge and record deletion windows. Failed
// jobs keep their artifacts longer for debugging.
type RetentionConfig struct {
	CompletedAfter time.Duration
	FailedAfter    time.Duration
	SweepInterval  time.Duration
	DeleteGrace    time.Duration
}

// IngestConfig holds hot-folder auto-submission settings.
type IngestConfig struct {
	WatchRoots []string
	Debounce   time.Duration
	OwnerID    string
}

// DocIntelConfig holds the document-intelligence service settings.
type DocIntelConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	storageRoot := getEnv("STORAGE_ROOT", "./data/jobs")
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", "file:"+filepath.Join(storageRoot, "queue.db")),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Root: storageRoot,
		},
		Queue: QueueConfig{
			MaxWorkers:        getEnvAsInt("MAX_WORKERS", 2),
			PollInterval:      getEnvAsDuration("POLL_INTERVAL", 2*time.Second),
			HeartbeatInterval: getEnvAsDuration("HEARTBEAT_INTERVAL", 10*time.Second),
			StuckTimeout:      getEnvAsDuration("STUCK_TIMEOUT", 2*time.Minute),
			MaxRetries:        getEnvAsInt("MAX_RETRIES", 3),
		},
		Retention: RetentionConfig{
			CompletedAfter: getEnvAsDuration("RETENTION_COMPLETED", 72*time.Hour),
			FailedAfter:    getEnvAsDuration("RETENTION_FAILED", 7*24*time.Hour),
			SweepInterval:  getEnvAsDuration("SWEEP_INTERVAL", time.Hour),
			DeleteGrace:    getEnvAsDuration("DELETE_GRACE", 24*time.Hour),
		},
		Ingest: IngestConfig{
			WatchRoots: getEnvAsList("WATCH_ROOTS"),
			Debounce:   getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
			OwnerID:    getEnv("WATCH_OWNER_ID", "hotfolder"),
		},
		DocIntel: DocIntelConfig{
			BaseURL: getEnv("DOCINTEL_URL", ""),
			APIKey:  getEnv("DOCINTEL_API_KEY", ""),
			Timeout: getEnvAsDuration("DOCINTEL_TIMEOUT", 60*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Queue.MaxWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Queue.StuckTimeout <= c.Queue.HeartbeatInterval {
		return NewAppError("CONFIG_ERROR", "STUCK_TIMEOUT must exceed HEARTBEAT_INTERVAL", ErrInvalidInput)
	}
	if c.DocIntel.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "DOCINTEL_URL is required", ErrInvalidInput)
	}
	return nil
}
