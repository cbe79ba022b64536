package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/memstore"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/ratelimit"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when running on the in-memory driver.
	db    *sql.DB
	redis *redis.Client

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	identityResolver *service.IdentityResolver
	userService      service.UserService
	taskService      service.TaskService

	// limiter is nil when rate limiting is disabled.
	limiter ratelimit.Limiter
}

// newApplication wires stores, services and the rate limiter from cfg.
// db must be non-nil for the postgres driver.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	switch cfg.Database.Driver {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres driver selected without a database connection")
		}
		app.userStore = postgres.NewPostgresUserStore(db, logger)
		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	case "memory":
		logger.Warn("using in-memory stores; data is lost on restart")
		app.userStore = memstore.NewUserStore(logger)
		app.taskStore = memstore.NewTaskStore(logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.identityResolver = service.NewIdentityResolver(app.jwtService, app.userStore, logger)

	app.userService, err = service.NewUserService(
		app.userStore,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, cfg.Tasks, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	if err := app.setupRateLimiter(); err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

func (app *application) setupRateLimiter() error {
	rl := app.config.RateLimit
	if !rl.Enabled {
		app.logger.Info("rate limiting disabled")
		return nil
	}

	switch rl.Backend {
	case "redis":
		app.redis = redis.NewClient(&redis.Options{
			Addr:     rl.RedisAddr,
			Password: rl.RedisPassword,
			DB:       rl.RedisDB,
		})
		app.limiter = ratelimit.NewRedisLimiter(app.redis, rl.Requests, rl.Window())
	case "memory", "":
		app.limiter = ratelimit.NewMemoryLimiter(rl.Requests, rl.Window(), nil)
	default:
		return fmt.Errorf("unsupported rate limit backend %q", rl.Backend)
	}

	app.logger.Info("rate limiting enabled",
		"backend", rl.Backend,
		"requests", rl.Requests,
		"window_seconds", rl.WindowSeconds)
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases external connections.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
