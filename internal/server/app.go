// Package server assembles the bridge: identity store, failed-attempt
// limiter, authentication service, and the gRPC and HTTP front ends.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authbridge/internal/dbx"
	"github.com/dmitrijs2005/authbridge/internal/logging"
	"github.com/dmitrijs2005/authbridge/internal/server/config"
	"github.com/dmitrijs2005/authbridge/internal/server/httpapi"
	"github.com/dmitrijs2005/authbridge/internal/server/limiter"
	"github.com/dmitrijs2005/authbridge/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authbridge/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	gs "github.com/dmitrijs2005/authbridge/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	redis   *redis.Client
	service *services.AuthService
}

// NewApp opens the identity store (applying the embedded schema when asked),
// connects the limiter and builds the authentication service.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := sql.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m, err := newRepositoryManager(c.DatabaseDriver)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gw := dbx.NewGateway(db, c.QueryTimeout)
	if err := gw.Ping(ctx); err != nil {
		// The store may come up later; every call reports it as unavailable.
		logger.Warn(ctx, "identity store not reachable at start-up", "error", err)
	}

	if c.Migrate {
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		logger.Info(ctx, "identity schema migrated", "driver", c.DatabaseDriver)
	}

	var rc *redis.Client
	var lim *limiter.AttemptLimiter
	if c.RedisAddress != "" {
		rc = redis.NewClient(&redis.Options{Addr: c.RedisAddress})
		lim = limiter.NewAttemptLimiter(rc, c.MaxOTPAttempts, c.OTPCooldown)
		if err := lim.Ping(ctx); err != nil {
			logger.Warn(ctx, "limiter backend not reachable, failing open", "address", c.RedisAddress, "error", err)
		}
	}

	as := services.NewAuthService(gw, m, lim, c, logger)

	return &App{config: c, logger: logger, db: db, redis: rc, service: as}, nil
}

func newRepositoryManager(driver string) (repomanager.RepositoryManager, error) {
	switch driver {
	case "pgx":
		return repomanager.NewPostgresRepositoryManager(), nil
	case "sqlite":
		return repomanager.NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Run serves gRPC and, when configured, HTTP until ctx is cancelled or
// SIGINT/SIGTERM arrives. A failing server stops the other one.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.GRPCAddress, app.logger, app.service, app.config.RequestTimeout)
		return s.Run(ctx)
	})

	if app.config.HTTPAddress != "" {
		g.Go(func() error {
			h := httpapi.NewHandler(app.service, app.config.SecretKey, app.logger)
			s := httpapi.NewServer(app.config.HTTPAddress, httpapi.NewRouter(h, app.logger, app.config.RequestTimeout), app.logger)
			return s.Run(ctx)
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}

func (app *App) close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	_ = app.db.Close()
}
