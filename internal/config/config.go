package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Cache    CacheConfig
	Jobs     JobsConfig
	Tables   TablesConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// RateLimit caps login and forgot-password attempts per client IP per
	// minute; zero disables the limit.
	RateLimit int
}

// RedisConfig holds Redis settings. Redis backs the list cache and the job
// queue; with Enabled false the cache falls back to process memory and
// scheduled activation is disabled.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether any broker is configured
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// CacheConfig holds list-cache settings
type CacheConfig struct {
	TTL time.Duration
}

// JobsConfig holds background job settings
type JobsConfig struct {
	SweepCron   string
	Concurrency int
}

// TablesConfig bounds the working-table endpoints
type TablesConfig struct {
	QueryTimeout   time.Duration
	MaxUploadBytes int64
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
	Production     bool
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	production := os.Getenv("GO_ENV") == "production"
	if !production {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Server.Production = production

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL, err = parseDuration("JWT_TTL", "24h"); err != nil {
		return nil, err
	}
	if cfg.Auth.RateLimit, err = parseInt("AUTH_RATE_LIMIT", "10"); err != nil {
		return nil, err
	}

	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "engage-events")

	if cfg.Cache.TTL, err = parseDuration("CACHE_TTL", "60s"); err != nil {
		return nil, err
	}

	cfg.Jobs.SweepCron = getEnvWithDefault("CAMPAIGN_SWEEP_CRON", "@every 1m")
	if cfg.Jobs.Concurrency, err = parseInt("WORKER_CONCURRENCY", "5"); err != nil {
		return nil, err
	}

	if cfg.Tables.QueryTimeout, err = parseDuration("TABLE_QUERY_TIMEOUT", "5m"); err != nil {
		return nil, err
	}
	uploadMB, err := parseInt("TABLE_UPLOAD_MAX_MB", "50")
	if err != nil {
		return nil, err
	}
	cfg.Tables.MaxUploadBytes = int64(uploadMB) << 20

	if cfg.Server.Port, err = parseInt("SERVER_PORT", "8000"); err != nil {
		return nil, err
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	value, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
