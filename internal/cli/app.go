// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/sitepanel/internal/application/usecase"
	"github.com/bnema/sitepanel/internal/cli/styles"
	"github.com/bnema/sitepanel/internal/domain/repository"
	"github.com/bnema/sitepanel/internal/infrastructure/config"
	"github.com/bnema/sitepanel/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/sitepanel/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config      *config.Manager
	Theme       *styles.Theme
	Permissions repository.PermissionRepository

	// Use cases
	SitePermissionsUC *usecase.SitePermissionsUseCase

	db *sql.DB

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Config()

	logCfg := logging.DefaultConfig()
	if level, parseErr := zerolog.ParseLevel(cfg.Logging.Level); parseErr == nil {
		logCfg.Level = level
	}
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	permissionRepo := sqlite.NewPermissionRepository(db)

	return &App{
		Config:            manager,
		Theme:             styles.DefaultTheme(),
		Permissions:       permissionRepo,
		SitePermissionsUC: usecase.NewSitePermissionsUseCase(permissionRepo, manager.Config),
		db:                db,
		ctx:               ctx,
	}, nil
}

// Ctx returns the app context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases all resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}
