package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fitlog/fittrack-api/internal/config"
	"github.com/fitlog/fittrack-api/internal/platform/postgres"
	"github.com/fitlog/fittrack-api/internal/service"
	"github.com/fitlog/fittrack-api/internal/service/auth"
	"github.com/fitlog/fittrack-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore
	workoutStore store.WorkoutStore

	// Service interfaces
	hasher         auth.PasswordHasher
	accountService service.AccountService
	workoutService service.WorkoutService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize password hasher
	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize stores
	app.accountStore = postgres.NewAccountStore(db, logger)
	app.workoutStore = postgres.NewWorkoutStore(db, logger)

	// Services share one transaction runner bound to the database
	txRunner := store.NewSQLTxRunner(db)

	app.accountService = service.NewAccountService(
		app.accountStore,
		app.hasher,
		txRunner,
		logger,
	)

	app.workoutService = service.NewWorkoutService(
		app.workoutStore,
		app.accountStore,
		txRunner,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
