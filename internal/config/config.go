package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageBackendMemory   = "memory"
	StorageBackendJSON     = "json"
	StorageBackendBolt     = "bolt"
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Statistics StatisticsConfig
	Security   SecurityConfig
	Log        LogConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Backend         string
	Path            string
	DSN             string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
}

type StatisticsConfig struct {
	TimeZone    string
	TrendMonths int
	RecentLimit int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LogConfig struct {
	Level  string
	Format string
}

type SeedConfig struct {
	Enabled bool
	Months  int
	Seed    int64
}

// Load reads configuration from the environment, loading a .env file first when present
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	backend := getEnv("STORAGE_BACKEND", StorageBackendJSON)

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Backend:         backend,
			Path:            getEnv("STORAGE_PATH", defaultStoragePath(backend)),
			DSN:             getEnv("DATABASE_DSN", ""),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 5),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			RunMigrations:   getBoolEnv("DB_RUN_MIGRATIONS", true),
		},
		Statistics: StatisticsConfig{
			TimeZone:    getEnv("STATS_TIME_ZONE", "Local"),
			TrendMonths: getIntEnv("STATS_TREND_MONTHS", 6),
			RecentLimit: getIntEnv("STATS_RECENT_LIMIT", 5),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Seed: SeedConfig{
			Enabled: getBoolEnv("SEED_SAMPLE_DATA", false),
			Months:  getIntEnv("SEED_MONTHS", 6),
			Seed:    int64(getIntEnv("SEED_RANDOM_SEED", 0)),
		},
	}
}

// Validate checks the configuration and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Storage.Backend {
	case StorageBackendMemory:
	case StorageBackendJSON, StorageBackendBolt, StorageBackendSQLite:
		if c.Storage.Path == "" {
			problems = append(problems, fmt.Sprintf("storage path cannot be empty for %s backend", c.Storage.Backend))
		}
	case StorageBackendPostgres:
		if c.Storage.DSN == "" {
			problems = append(problems, "DATABASE_DSN is required for postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of %v", c.Storage.Backend, StorageBackends()))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid time zone '%s': %v", c.Statistics.TimeZone, err))
	}

	if c.Statistics.TrendMonths < 1 || c.Statistics.TrendMonths > 120 {
		problems = append(problems, fmt.Sprintf("invalid trend months %d: must be between 1 and 120", c.Statistics.TrendMonths))
	}

	if c.Statistics.RecentLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid recent limit %d: must not be negative", c.Statistics.RecentLimit))
	}

	if c.Security.RateLimitPerSecond < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.Security.RateLimitPerSecond))
	}
	if c.Security.RateLimitBurst < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit burst %d: must be at least 1", c.Security.RateLimitBurst))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.Log.Format))
	}

	if c.Seed.Enabled && c.Seed.Months < 1 {
		problems = append(problems, fmt.Sprintf("invalid seed months %d: must be at least 1", c.Seed.Months))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Location resolves the statistics time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Statistics.TimeZone == "" || c.Statistics.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Statistics.TimeZone)
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// SlogLevel parses the configured log level
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", c.Level)
	}
	return level, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// StorageBackends lists every supported storage backend
func StorageBackends() []string {
	return []string{
		StorageBackendMemory,
		StorageBackendJSON,
		StorageBackendBolt,
		StorageBackendSQLite,
		StorageBackendPostgres,
	}
}

func defaultStoragePath(backend string) string {
	switch backend {
	case StorageBackendBolt:
		return "./data/transactions.db"
	case StorageBackendSQLite:
		return "./data/transactions.sqlite"
	default:
		return "./data/transactions.json"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
