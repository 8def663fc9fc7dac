// Package config defines the service configuration and loads it from
// defaults, an optional YAML file, environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"GoNLP/internal/logging"
)

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BatchConfig bounds the batch invocation endpoint.
type BatchConfig struct {
	// MaxItems is the largest accepted batch.
	MaxItems int `koanf:"max_items"`

	// MaxConcurrency is how many items of one batch run at once.
	MaxConcurrency int `koanf:"max_concurrency"`
}

// Config is the full service configuration.
type Config struct {
	// Namespace prefixes module names, e.g. "nlp.sentiment.AnalyzeSentiment".
	Namespace string `koanf:"namespace"`

	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	Batch  BatchConfig  `koanf:"batch"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Namespace: "nlp.sentiment",
		Server: ServerConfig{
			Host:            "localhost",
			Port:            50051,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
		Batch: BatchConfig{
			MaxItems:       64,
			MaxConcurrency: 8,
		},
	}
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// WithLimits returns c with every non-positive server limit, timeout and
// batch bound replaced by its default.
func (c Config) WithLimits() Config {
	d := DefaultConfig()
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = d.Server.MaxBodyBytes
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = d.Server.IdleTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Batch.MaxItems <= 0 {
		c.Batch.MaxItems = d.Batch.MaxItems
	}
	if c.Batch.MaxConcurrency <= 0 {
		c.Batch.MaxConcurrency = d.Batch.MaxConcurrency
	}
	return c
}

// Validate checks the configuration for values the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace is required"))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be %q or %q", c.Log.Format, logging.FormatJSON, logging.FormatConsole))
	}
	if c.Batch.MaxItems <= 0 {
		errs = append(errs, errors.New("batch.max_items must be positive"))
	}
	if c.Batch.MaxConcurrency <= 0 {
		errs = append(errs, errors.New("batch.max_concurrency must be positive"))
	}
	return errors.Join(errs...)
}
