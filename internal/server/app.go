// Package server wires storage, the user service and the HTTP front end
// together and runs them until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/signupd/internal/cryptox"
	"github.com/dmitrijs2005/signupd/internal/dbx"
	"github.com/dmitrijs2005/signupd/internal/logging"
	"github.com/dmitrijs2005/signupd/internal/server/config"
	"github.com/dmitrijs2005/signupd/internal/server/httpserver"
	"github.com/dmitrijs2005/signupd/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/signupd/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// NewApp opens the database, creates the users table when missing and builds
// the user service. Any failure here means the service cannot start.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	dialect, err := dbx.ParseDialect(c.DatabaseDialect)
	if err != nil {
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.PasswordHasher)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.OpenDB(ctx, dialect, c.DatabaseDSN, c.MaxConnections)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	um := repomanager.NewRepositoryManager(dialect)
	if err := um.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db schema error: %w", err)
	}

	us := services.NewUserService(db, um, hasher, logger)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s, err := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.config.StaticPath,
		app.config.ShutdownTimeout, app.userService, app.db, app.logger)
	if err != nil {
		cancelFunc()
		return err
	}

	if err := s.Run(ctx); err != nil {
		cancelFunc()
		return err
	}
	return nil
}

// Run serves HTTP until ctx is cancelled or a stop signal arrives, then
// closes the connection pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.startHTTPServer(ctx, cancelFunc); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			runErr = err
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")

	return runErr
}
