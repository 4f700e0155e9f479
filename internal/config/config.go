package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime settings read from the environment.
type Config struct {
	AppPort          string
	DatabaseDriver   string
	DatabaseDSN      string
	RabbitMQURL      string
	RabbitMQExchange string
	RabbitMQQueue    string
	RabbitMQConsume  bool
	RedisURL         string
	CacheTTL         time.Duration
	CachePrefix      string
	StrictReferences bool
	ShutdownTimeout  time.Duration
}

var drivers = map[string]bool{"sqlite": true, "postgres": true, "mysql": true, "memory": true}

// Load reads configuration from environment variables, after loading a
// .env file from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "marketplace.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "marketplace")
	v.SetDefault("RABBITMQ_QUEUE", "marketplace_events")
	v.SetDefault("RABBITMQ_CONSUME", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("CACHE_PREFIX", "marketplace")
	v.SetDefault("STRICT_REFERENCES", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.AutomaticEnv() // Load environment variables

	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
		RabbitMQConsume:  v.GetBool("RABBITMQ_CONSUME"),
		RedisURL:         v.GetString("REDIS_URL"),
		CachePrefix:      v.GetString("CACHE_PREFIX"),
		StrictReferences: v.GetBool("STRICT_REFERENCES"),
	}

	if !drivers[cfg.DatabaseDriver] {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(v.GetString("CACHE_TTL")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	return cfg, nil
}
