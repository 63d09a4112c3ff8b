package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/payments-api/pkg/database"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config aggregates application configuration values.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTP     HTTPConfig
	GRPC     GRPCConfig
	Database database.Config
	Store    StoreConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Tracing  TracingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Port            string
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// GRPCConfig configures the gRPC health endpoint.
type GRPCConfig struct {
	Port string
}

// StoreConfig selects the payments row store.
type StoreConfig struct {
	Driver        string
	RunMigrations bool
}

// KafkaConfig is optional; with no brokers the publisher and consumer are not started.
type KafkaConfig struct {
	Brokers []string
	GroupID string
}

// RedisConfig is optional; with no address rate limiting is disabled.
type RedisConfig struct {
	Addr              string
	Password          string
	RequestsPerMinute int
}

// TracingConfig controls the Jaeger exporter.
type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
}

// IsDevelopment reports whether console logging should be used.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "payments-api"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port:           getEnv("HTTP_PORT", "3000"),
			AllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		GRPC: GRPCConfig{
			Port: getEnv("GRPC_PORT", "9090"),
		},
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "payments"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Store: StoreConfig{
			Driver:        strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
			RunMigrations: parseBoolWithDefault("DB_RUN_MIGRATIONS", true),
		},
		Kafka: KafkaConfig{
			Brokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
			GroupID: getEnv("KAFKA_GROUP_ID", "payments-api"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Tracing: TracingConfig{
			Enabled:        parseBoolWithDefault("TRACING_ENABLED", false),
			JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
		},
	}

	var err error
	if cfg.HTTP.ReadTimeout, err = parseDuration("HTTP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.WriteTimeout, err = parseDuration("HTTP_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	rpm, err := parseInt("RATE_LIMIT_RPM", 100)
	if err != nil {
		return Config{}, err
	}
	if rpm <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d", rpm)
	}
	cfg.Redis.RequestsPerMinute = rpm

	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
