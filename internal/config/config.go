package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the AI service
type Config struct {
	// Server configuration
	HTTPPort    int    `env:"PORT" envDefault:"8000"`
	// Auxiliary listeners are opt-in; 0 disables them
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"0"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"0"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Service metadata
	Service ServiceConfig

	// HTTP server tuning
	HTTP HTTPConfig

	// Redis configuration
	Redis RedisConfig

	// LLM configuration
	LLM LLMConfig

	// Dependency health checks
	Health HealthConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// ServiceConfig describes the running service
type ServiceConfig struct {
	Name        string `env:"SERVICE_NAME" envDefault:"Production-Ready AI Service"`
	Description string `env:"SERVICE_DESCRIPTION" envDefault:"A template for building and deploying AI services."`
}

// HTTPConfig holds HTTP server timeouts
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// RedisConfig holds Redis connection configuration.
// The Redis probe is enabled only when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASS"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"2"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"0"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"1"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// LLMConfig holds LLM provider configuration.
// The LLM probe is enabled only when APIKey is set.
type LLMConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"anthropic"`
	APIKey   string `env:"LLM_API_KEY"`
	BaseURL  string `env:"LLM_BASE_URL"`
}

// HealthConfig controls background dependency probing
type HealthConfig struct {
	CheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL" envDefault:"30s"`
	CheckTimeout  time.Duration `env:"HEALTH_CHECK_TIMEOUT" envDefault:"5s"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server ports
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}
	if c.GRPCPort != 0 && c.GRPCPort == c.HTTPPort {
		return fmt.Errorf("gRPC port %d collides with HTTP port", c.GRPCPort)
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.HTTPPort {
		return fmt.Errorf("metrics port %d collides with HTTP port", c.MetricsPort)
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.GRPCPort {
		return fmt.Errorf("metrics port %d collides with gRPC port", c.MetricsPort)
	}

	if c.Service.Name == "" {
		return fmt.Errorf("service name is required")
	}

	// Validate LLM config
	if c.LLM.APIKey != "" && c.LLM.Provider != "anthropic" {
		return fmt.Errorf("unsupported LLM provider: %s (only 'anthropic' is supported)", c.LLM.Provider)
	}

	if c.Health.CheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive")
	}
	if c.Health.CheckTimeout <= 0 {
		return fmt.Errorf("health check timeout must be positive")
	}
	if c.Timeouts.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// RedisEnabled reports whether a Redis dependency is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// LLMEnabled reports whether an LLM provider is configured
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}

// GRPCEnabled reports whether the gRPC health listener is configured
func (c *Config) GRPCEnabled() bool {
	return c.GRPCPort != 0
}

// MetricsEnabled reports whether the metrics listener is configured
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort != 0
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GetGRPCAddr returns the gRPC server address
func (c *Config) GetGRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// GetMetricsAddr returns the metrics server address
func (c *Config) GetMetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}
