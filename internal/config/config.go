// Package config handles service configuration loading.
package config

import (
	"time"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all service settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Rules   rules.Rules   `yaml:"rules"`
}

// ServerConfig holds gRPC listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig selects where battle maps are kept.
type StorageConfig struct {
	Backend       string        `yaml:"backend"`
	RedisEndpoint string        `yaml:"redis_endpoint"`
	MapTTL        time.Duration `yaml:"map_ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with the shipped values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Backend:       BackendMemory,
			RedisEndpoint: "localhost:6379",
			MapTTL:        24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Rules: rules.Default(),
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	errors.ValidateEnum("storage.backend", c.Storage.Backend, []string{BackendMemory, BackendRedis}, vb)
	if c.Storage.Backend == BackendRedis {
		errors.ValidateRequired("storage.redis_endpoint", c.Storage.RedisEndpoint, vb)
	}
	if c.Storage.MapTTL < 0 {
		vb.Field("storage.map_ttl", "must not be negative")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)

	if err := vb.Build(); err != nil {
		return err
	}

	if err := c.Rules.Validate(); err != nil {
		return errors.Wrap(err, "invalid rules")
	}
	return nil
}
