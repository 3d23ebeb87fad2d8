package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shareit/service-booking/internal/platform/database"
)

// KafkaConfig configures the booking event stream. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// RateLimitConfig bounds per-client request rate.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port            string
	AppEnv          string
	MigrationsDir   string
	OTelEndpoint    string
	ShutdownTimeout time.Duration
	DBConfig        database.PostgresConfig
	KafkaConfig     KafkaConfig
	RateLimit       RateLimitConfig
}

const envPrefix = "BOOKING"

// Load reads config.yaml (optional) and BOOKING_* environment variables.
func Load() (*ServiceConfig, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*ServiceConfig, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &ServiceConfig{
		Port:            normalizePort(v.GetString("SERVICE_PORT")),
		AppEnv:          v.GetString("APP_ENV"),
		MigrationsDir:   v.GetString("MIGRATIONS_DIR"),
		OTelEndpoint:    v.GetString("OTEL_ENDPOINT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		DBConfig: database.PostgresConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("OTEL_ENDPOINT", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "shareit")
	v.SetDefault("DB_PASSWORD", "shareit")
	v.SetDefault("DB_NAME", "shareit")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "booking.events")

	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)
}

func (c *ServiceConfig) validate() error {
	if c.DBConfig.Host == "" || c.DBConfig.DBName == "" {
		return errors.New("database host and name are required")
	}
	if c.KafkaConfig.Enabled() && c.KafkaConfig.Topic == "" {
		return errors.New("kafka topic is required when brokers are set")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit rps and burst must be positive")
	}
	return nil
}

func normalizePort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
