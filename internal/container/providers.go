// Package container provides dependency injection and lifecycle management
// for the rental approval backend following Clean Architecture principles.
package container

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/application/service"
	"github.com/kevinzhou/rentflow/internal/infrastructure/external/analytics"
	"github.com/kevinzhou/rentflow/internal/infrastructure/external/escrowpay"
	"github.com/kevinzhou/rentflow/internal/infrastructure/external/notify"
	"github.com/kevinzhou/rentflow/internal/infrastructure/persistence/repository"
	"github.com/kevinzhou/rentflow/internal/infrastructure/persistence/sqlite"
	"github.com/kevinzhou/rentflow/pkg/database"
)

// DatabaseBundle holds database-related components.
type DatabaseBundle struct {
	Conn           *database.DB
	TransactionMgr *sqlite.DB
}

// ExternalBundle holds outbound integration components.
type ExternalBundle struct {
	Gateway   port.PaymentGateway
	Sender    port.NotificationSender
	Analytics port.AnalyticsSink
}

// ProvideDatabase creates database connection and transaction manager.
// Returns DatabaseBundle containing the connection and TransactionManager.
// Also runs any pending database migrations automatically.
func ProvideDatabase(cfg *DatabaseConfig, logger *zap.Logger) (*DatabaseBundle, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	// Open SQLite with WAL mode, busy timeout and foreign keys enforced
	conn, err := database.New(database.Config{
		Path:            cfg.Path,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}, logger)
	if err != nil {
		return nil, err
	}

	// Run database migrations if migrations directory is configured
	if cfg.MigrationsDir != "" {
		migrator := database.NewMigrator(conn, logger)

		if err := migrator.RunMigrations(cfg.MigrationsDir); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Create transaction manager wrapper
	db := sqlite.NewDB(conn.DB, logger)

	return &DatabaseBundle{
		Conn:           conn,
		TransactionMgr: db,
	}, nil
}

// ProvideRepositories creates all repositories from a database connection.
// Returns RepositoryBundle containing all repository implementations.
func ProvideRepositories(sqlDB *sql.DB, logger *zap.Logger) (*RepositoryBundle, error) {
	if sqlDB == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &RepositoryBundle{
		Application:  repository.NewApplicationRepository(sqlDB, logger),
		Property:     repository.NewPropertyRepository(sqlDB, logger),
		Lease:        repository.NewLeaseRepository(sqlDB, logger),
		Payment:      repository.NewPaymentRepository(sqlDB, logger),
		User:         repository.NewUserRepository(sqlDB, logger),
		Profile:      repository.NewProfileRepository(sqlDB, logger),
		Notification: repository.NewNotificationRepository(sqlDB, logger),
	}, nil
}

// ProvideExternal creates the escrow gateway client, notification sender,
// and analytics sink.
func ProvideExternal(escrowCfg *EscrowConfig, notifyCfg *NotificationsConfig, logger *zap.Logger) (*ExternalBundle, error) {
	if escrowCfg == nil {
		return nil, fmt.Errorf("escrow config is required")
	}
	if notifyCfg == nil {
		return nil, fmt.Errorf("notifications config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	gateway := escrowpay.NewClient(escrowpay.Config{
		BaseURL: escrowCfg.BaseURL,
		APIKey:  escrowCfg.APIKey,
		Timeout: escrowCfg.Timeout,
	}, logger)

	sender := notify.NewSender(notify.Config{
		WebhookURL: notifyCfg.WebhookURL,
		Timeout:    notifyCfg.Timeout,
	}, logger)

	return &ExternalBundle{
		Gateway:   gateway,
		Sender:    sender,
		Analytics: analytics.NewSink(logger),
	}, nil
}

// ServiceDeps holds dependencies required for creating services.
type ServiceDeps struct {
	Repos     *RepositoryBundle
	TxManager port.TransactionManager
	External  *ExternalBundle
	Logger    *zap.Logger
}

// ProvideServices creates all application services.
// Returns ServiceBundle containing all service implementations.
func ProvideServices(deps *ServiceDeps) (*ServiceBundle, error) {
	if deps == nil {
		return nil, fmt.Errorf("service dependencies are required")
	}
	if deps.Repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	if deps.TxManager == nil {
		return nil, fmt.Errorf("transaction manager is required")
	}
	if deps.External == nil {
		return nil, fmt.Errorf("external clients are required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	// Create logger adapter for services
	serviceLogger := &zapLoggerAdapter{logger: deps.Logger}

	authority := service.NewApprovalAuthority(
		deps.Repos.Property,
		deps.Repos.Profile,
		serviceLogger,
	)
	provisioner := service.NewLeaseProvisioner(
		deps.Repos.Lease,
		deps.Repos.Property,
		deps.Repos.Profile,
		deps.TxManager,
		serviceLogger,
	)
	escrow := service.NewEscrowPaymentCoordinator(
		deps.External.Gateway,
		deps.Repos.Payment,
		serviceLogger,
	)
	compensator := service.NewCompensationManager(
		deps.Repos.Application,
		deps.Repos.Lease,
		deps.Repos.Payment,
		serviceLogger,
	)
	notifier := service.NewNotificationService(
		deps.Repos.Notification,
		deps.External.Sender,
		serviceLogger,
	)

	return &ServiceBundle{
		Authority:    authority,
		Provisioner:  provisioner,
		Escrow:       escrow,
		Compensator:  compensator,
		Notification: notifier,
		Approval: service.NewApprovalService(
			deps.Repos.Application,
			deps.Repos.Property,
			deps.Repos.User,
			authority,
			provisioner,
			escrow,
			compensator,
			notifier,
			deps.External.Analytics,
			serviceLogger,
		),
	}, nil
}
