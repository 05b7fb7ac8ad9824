package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httpapi "github.com/aussiebroadwan/taskapi/internal/tasks/http"
	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store/drivers/mongo"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskapi/pkg/cryptox"
	"github.com/aussiebroadwan/taskapi/pkg/otelx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v1.0.0"

	serviceName = "task-service"
)

// Application encapsulates the task service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db           store.Store
	validator    *validx.Validator
	otelShutdown otelx.ShutdownFunc

	// Services
	tokenService *service.TokenService
	authService  *service.AuthService
	userService  *service.UserService
	taskService  *service.TaskService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		validator: validx.New(),
	}

	shutdown, err := otelx.Setup(ctx, otelx.Config{
		Enabled:  cfg.OTelEnabled,
		Endpoint: cfg.OTelEndpoint,
		Service:  serviceName,
		Version:  BuildVersion,
		Env:      cfg.Env,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.otelShutdown = shutdown

	if err := app.initDatabase(ctx); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		_ = shutdown(ctx)
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("task service starting", "port", app.cfg.Port, "version", BuildVersion, "store", app.cfg.StoreDriver)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down task service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.otelShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("task service stopped")
	return nil
}

// Handler returns the fully wrapped HTTP handler.
func (app *Application) Handler() http.Handler { return app.server.Handler }

// initDatabase connects to the configured store and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := connectStore(ctx, app.cfg, app.logger, app.openStore)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database ready", "driver", app.cfg.StoreDriver)
	return nil
}

// connectStore calls open up to DBConnectAttempts times, waiting
// DBConnectDelay between attempts.
func connectStore(
	ctx context.Context,
	cfg Config,
	logger *slog.Logger,
	open func(context.Context) (store.Store, error),
) (store.Store, error) {
	attempt := 0
	db, err := backoff.Retry(ctx,
		func() (store.Store, error) {
			attempt++
			return open(ctx)
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(cfg.DBConnectDelay)),
		backoff.WithMaxTries(cfg.DBConnectAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("database connection failed, retrying",
				"attempt", attempt,
				"max_attempts", cfg.DBConnectAttempts,
				"retry_in", next,
				"error", err,
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, err)
	}
	return db, nil
}

// openStore opens and pings the configured store once.
func (app *Application) openStore(ctx context.Context) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.StoreDriver {
	case StoreDriverMongo:
		db, err = mongo.NewStore(ctx, app.cfg.MongoURL, app.cfg.MongoDatabase)
	default:
		db, err = sqlite.NewStore(app.cfg.DatabaseFile)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize512)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	tokens, err := service.NewTokenService([]byte(secret), app.cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	hasher, err := cryptox.NewHasher(pepper)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.authService = &service.AuthService{Store: app.db, Hasher: hasher, Tokens: tokens}
	app.userService = &service.UserService{Store: app.db, Validator: app.validator}
	app.taskService = &service.TaskService{Store: app.db, Validator: app.validator}
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.validator,
		app.logger,
		app.cfg.ExposeErrorDetail,
	)

	router.TokenService = app.tokenService
	router.AuthService = app.authService
	router.UserService = app.userService
	router.TaskService = app.taskService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 3 * time.Second,
	}
}
