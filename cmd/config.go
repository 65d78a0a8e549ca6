package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

const defaultOutboxBatchSize = 100

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	DatabaseURL string

	KafkaHost                string
	KafkaDeliveryEventsTopic string

	OutboxBatchSize int
	LogLevel        slog.Level
}

// LoadConfig reads envFile into the environment, without overriding variables
// that are already set, and builds a Config from the environment. A missing
// envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults for optional keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:                 get("HTTP_PORT", "8080"),
		DBHost:                   get("DB_HOST", "localhost"),
		DBPort:                   get("DB_PORT", "5432"),
		DBUser:                   get("DB_USER", ""),
		DBPassword:               getenv("DB_PASSWORD"),
		DBName:                   get("DB_NAME", ""),
		DBSslMode:                get("DB_SSLMODE", "disable"),
		DatabaseURL:              get("DATABASE_URL", ""),
		KafkaHost:                get("KAFKA_HOST", ""),
		KafkaDeliveryEventsTopic: get("KAFKA_DELIVERY_EVENTS_TOPIC", "delivery.events"),
		OutboxBatchSize:          defaultOutboxBatchSize,
		LogLevel:                 slog.LevelInfo,
	}

	var errs []error

	if raw := get("OUTBOX_BATCH_SIZE", ""); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err))
		}
		config.OutboxBatchSize = size
	}

	if raw := get("LOG_LEVEL", ""); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	if config.DatabaseURL == "" && (config.DBUser == "" || config.DBName == "") {
		errs = append(errs, errors.New("DB_USER and DB_NAME are required when DATABASE_URL is not set"))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns the key/value connection string for the Postgres driver.
// DATABASE_URL, when set, takes precedence over the DB_* keys.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, quoteDSNValue(c.DBPassword), c.DBName, c.DBSslMode,
	), nil
}

// KafkaEnabled reports whether outbox messages should go to a broker.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
