package config

import (
	"github.com/kevinzhou/rentflow/internal/container"
)

// ToContainerConfig converts the application Config to a container.Config.
// This provides a bridge between the file-based config loaded by viper
// and the container's configuration structure.
func (c *Config) ToContainerConfig() *container.Config {
	return &container.Config{
		Database: container.DatabaseConfig{
			Path:            c.Database.Path,
			MaxOpenConns:    c.Database.MaxOpenConns,
			MaxIdleConns:    c.Database.MaxIdleConns,
			ConnMaxLifetime: c.Database.ConnMaxLifetime,
			MigrationsDir:   c.Database.MigrationsDir,
		},
		Escrow: container.EscrowConfig{
			BaseURL: c.Escrow.BaseURL,
			APIKey:  c.Escrow.APIKey,
			Timeout: c.Escrow.Timeout,
		},
		Notifications: container.NotificationsConfig{
			WebhookURL: c.Notifications.WebhookURL,
			Timeout:    c.Notifications.Timeout,
		},
		Server: container.ServerConfig{
			Host:         c.Server.Host,
			Port:         c.Server.Port,
			ReadTimeout:  c.Server.ReadTimeout,
			WriteTimeout: c.Server.WriteTimeout,
		},
	}
}
