package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Zenodo     ZenodoConfig
	Worker     WorkerConfig
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

// ServerConfig holds the gRPC address and the HTTP address used for the
// OAuth redirect callback.
type ServerConfig struct {
	GRPCAddr string
	HTTPAddr string
}

// ExtractionConfig holds the external extraction service configuration.
// Extraction is AI-driven and slow; the timeout is a ceiling, not a typical
// latency, and must tolerate multi-minute processing.
type ExtractionConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ZenodoConfig holds the archival service endpoints and OAuth client.
// Endpoint is the web origin (OAuth authorize/token); APIEndpoint is the REST
// API base including the /api prefix.
type ZenodoConfig struct {
	Endpoint     string
	APIEndpoint  string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CallTimeout  time.Duration
}

// WorkerConfig sizes the extraction worker pool.
type WorkerConfig struct {
	Workers   int
	QueueSize int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8081"),
		},
		Extraction: ExtractionConfig{
			BaseURL: getEnv("POSTER_EXTRACTION_API", ""),
			Timeout: getEnvAsDuration("POSTER_EXTRACTION_TIMEOUT", 15*time.Minute),
		},
		Zenodo: ZenodoConfig{
			Endpoint:     getEnv("ZENODO_ENDPOINT", "https://zenodo.org"),
			APIEndpoint:  getEnv("ZENODO_API_ENDPOINT", "https://zenodo.org/api"),
			ClientID:     getEnv("ZENODO_CLIENT_ID", ""),
			ClientSecret: getEnv("ZENODO_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("ZENODO_REDIRECT_URI", ""),
			CallTimeout:  getEnvAsDuration("ZENODO_CALL_TIMEOUT", 2*time.Minute),
		},
		Worker: WorkerConfig{
			Workers:   getEnvAsInt("EXTRACTION_WORKERS", 4),
			QueueSize: getEnvAsInt("EXTRACTION_QUEUE_SIZE", 256),
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

// ZenodoConfigured reports whether the OAuth client is fully configured.
// When it is not, the connect endpoint reports the integration as disabled
// instead of failing.
func (c *Config) ZenodoConfigured() bool {
	return c.Zenodo.ClientID != "" && c.Zenodo.ClientSecret != "" &&
		c.Zenodo.RedirectURI != "" && c.Zenodo.Endpoint != "" && c.Zenodo.APIEndpoint != ""
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extraction.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "POSTER_EXTRACTION_API is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
