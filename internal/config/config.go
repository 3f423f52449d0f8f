package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	Store       StoreConfig
	Latency     LatencyConfig
	Audit       AuditConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type StoreConfig struct {
	Path   string
	Bucket string
}

type LatencyConfig struct {
	Operation time.Duration
}

type AuditConfig struct {
	Enabled  bool
	Interval time.Duration
}

type ContextConfig struct {
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "taskquest"),
		Environment: getString("APP_ENV", "development"),
		Store: StoreConfig{
			Path:   getString("STORE_PATH", "./data/taskquest.db"),
			Bucket: getString("STORE_BUCKET", "snapshots"),
		},
		Latency: LatencyConfig{
			// Zero by default; the original client faked a 500ms API call.
			Operation: getDuration("OPERATION_LATENCY", 0),
		},
		Audit: AuditConfig{
			Enabled:  getBool("AUDIT_ENABLED", true),
			Interval: getDuration("AUDIT_INTERVAL_SECONDS", 60*time.Second),
		},
		Context: ContextConfig{
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
