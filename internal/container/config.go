// Package container provides dependency injection and lifecycle management
// for the rental approval backend following Clean Architecture principles.
package container

import (
	"fmt"
	"time"
)

// Config holds all configuration for the Container.
// It aggregates configurations for all subsystems.
type Config struct {
	// Database configuration
	Database DatabaseConfig

	// Escrow payment gateway configuration
	Escrow EscrowConfig

	// Notification delivery configuration
	Notifications NotificationsConfig

	// Server configuration
	Server ServerConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Path to SQLite database file
	Path string

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections
	MaxIdleConns int

	// ConnMaxLifetime is the maximum connection lifetime
	ConnMaxLifetime time.Duration

	// MigrationsDir is the path to migration files
	MigrationsDir string
}

// EscrowConfig holds escrow payment gateway settings.
type EscrowConfig struct {
	// BaseURL of the gateway API
	BaseURL string

	// APIKey for gateway authentication
	APIKey string

	// Timeout for gateway calls
	Timeout time.Duration
}

// NotificationsConfig holds notification delivery settings.
type NotificationsConfig struct {
	// WebhookURL for outbound notification delivery.
	// Empty means log-only delivery.
	WebhookURL string

	// Timeout for webhook calls
	Timeout time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host to bind to
	Host string

	// Port to listen on
	Port int

	// ReadTimeout for HTTP server
	ReadTimeout time.Duration

	// WriteTimeout for HTTP server
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:            "data/rentflow.db",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			MigrationsDir:   "migrations",
		},
		Escrow: EscrowConfig{
			Timeout: 15 * time.Second,
		},
		Notifications: NotificationsConfig{
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Validate checks that required configuration values are present.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Escrow.BaseURL == "" {
		return fmt.Errorf("escrow.base_url is required")
	}
	if c.Escrow.APIKey == "" {
		return fmt.Errorf("escrow.api_key is required")
	}
	return nil
}
