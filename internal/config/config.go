// Package config assembles the application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	env "magazine-catalog/pkg/config"
)

// Config holds the process configuration.
type Config struct {
	HTTPAddr        string
	MetricsAddr     string
	LogLevel        string
	LogFormat       string
	SeedFile        string
	WriteRateRPS    float64
	WriteRateBurst  int
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	TracingEnabled  bool
	Version         string
}

// Load reads the configuration from the environment, applying defaults for
// unset variables, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        env.GetEnvString("HTTP_ADDR", ":8080"),
		MetricsAddr:     env.GetEnvString("METRICS_ADDR", ":9090"),
		LogLevel:        env.GetEnvString("LOG_LEVEL", "info"),
		LogFormat:       env.GetEnvString("LOG_FORMAT", "json"),
		SeedFile:        env.GetEnvString("CATALOG_SEED_FILE", ""),
		WriteRateRPS:    env.GetEnvFloat("WRITE_RATE_LIMIT_RPS", 10),
		WriteRateBurst:  env.GetEnvInt("WRITE_RATE_LIMIT_BURST", 20),
		ShutdownTimeout: env.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(env.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		TracingEnabled:  env.GetEnvBool("TRACING_ENABLED", false),
		Version:         env.GetEnvString("VERSION", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is required"))
	}
	if c.MetricsAddr == c.HTTPAddr {
		errs = append(errs, errors.New("METRICS_ADDR must differ from HTTP_ADDR"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	if c.WriteRateRPS <= 0 {
		errs = append(errs, errors.New("WRITE_RATE_LIMIT_RPS must be positive"))
	}
	if c.WriteRateBurst <= 0 {
		errs = append(errs, errors.New("WRITE_RATE_LIMIT_BURST must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	return errors.Join(errs...)
}
