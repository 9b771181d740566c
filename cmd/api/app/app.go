package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"users-api/cmd/api/di"
	"users-api/cmd/api/server"
	"users-api/internal/config"
	apperrors "users-api/pkg/errors"
	"users-api/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Server    *server.Server
	Container *di.Container
}

// New builds the application. Configuration, logger and database pool are
// all established here, so any failure happens before the listener binds.
func New() (*App, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, apperrors.NewStartupError(apperrors.PhaseConfig, err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig builds the application from an already loaded configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	l, err := initLogger(cfg)
	if err != nil {
		return nil, apperrors.NewStartupError(apperrors.PhaseLogger, err)
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		l.Error("failed to create container", zap.Error(err))
		_ = l.Sync()
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	srv := server.New(cfg, l, container.GinHandler, container.RateLimiter)

	return &App{
		Config:    cfg,
		Logger:    l,
		Server:    srv,
		Container: container,
	}, nil
}

// Run serves until ctx is canceled or the server fails, then shuts down.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", a.Config.App.Environment),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Server.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down application...")
		return a.shutdown()
	})

	return g.Wait()
}

// shutdown gracefully shuts down the application
func (a *App) shutdown() error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("starting graceful shutdown",
		zap.Int("timeout_seconds", a.Config.App.ShutdownTimeoutSeconds),
	)

	var errs []error

	if a.Server != nil {
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("failed to shutdown HTTP server", zap.Error(err))
			errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
		}
	}

	if a.Container != nil {
		if err := a.Container.Close(); err != nil {
			a.Logger.Error("failed to close container", zap.Error(err))
			errs = append(errs, fmt.Errorf("container close: %w", err))
		}
	}

	a.Logger.Info("application shutdown complete")

	// Syncing stdout/stderr fails on some platforms; that is not a shutdown error.
	if err := a.Logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		errs = append(errs, fmt.Errorf("logger sync: %w", err))
	}

	return errors.Join(errs...)
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Environment,
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
