// Package server initializes and runs the Rango Amigo application server.
// It opens the store, applies migrations, wires the services to the HTTP
// API and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rangoamigo/rangoamigo/internal/logging"
	"github.com/rangoamigo/rangoamigo/internal/server/config"
	"github.com/rangoamigo/rangoamigo/internal/server/httpapi"
	"github.com/rangoamigo/rangoamigo/internal/server/repositories/repomanager"
	"github.com/rangoamigo/rangoamigo/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

// NewApp builds the full application. The store is PostgreSQL when a DSN
// is configured, otherwise a local SQLite file; migrations run on startup
// in both cases.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	var (
		db  *sql.DB
		m   repomanager.RepositoryManager
		err error
	)
	if cfg.DatabaseDSN != "" {
		m = repomanager.NewPostgresRepositoryManager()
		db, err = repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	} else {
		m = repomanager.NewSQLiteRepositoryManager()
		db, err = repomanager.OpenSQLite(ctx, cfg.SQLitePath)
	}
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	accountService := services.NewAccountService(db, m, cfg)
	listingService := services.NewListingService(db, m)
	api := httpapi.NewServer(logger, accountService, listingService, cfg)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the HTTP API until ctx is cancelled or an OS signal arrives,
// then shuts down gracefully and closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:         app.config.Address,
		Handler:      app.api.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "address", app.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		app.db.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown", "error", err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "server", "error", err.Error())
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("closing db: %w", err)
	}
	return nil
}
