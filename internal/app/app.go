package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/pricescope/config"
	"github.com/guttosm/pricescope/internal/api"
	"github.com/guttosm/pricescope/internal/logger"
)

// Connect opens the stores named by the global configuration. Redis is
// optional: a failed connection is logged and the app runs uncached.
//
// Returns the Postgres pool, the Redis client (possibly nil) and a cleanup
// function closing both.
func Connect() (*sql.DB, *redis.Client, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisOpener(cfg)
	if err != nil {
		logger.L().Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, series cache disabled")
		rdb = nil
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = db.Close()
	}
	return db, rdb, cleanup, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL and, when configured, Redis.
//   - Builds the offer and history services.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, rdb, cleanup, err := Connect()
	if err != nil {
		return nil, nil, err
	}

	svcs := NewServices(db, rdb, cfg)

	// Initialize HTTP handler layer (service to HTTP mapping)
	handler := api.NewHandler(svcs.Offers, svcs.History)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RateLimitPerMinute)

	// Register health and readiness probes
	checks := []api.Check{{Name: "postgres", Ping: db.PingContext}}
	if rdb != nil {
		checks = append(checks, api.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}
	api.NewHealthHandler(checks...).Register(router)

	return router, cleanup, nil
}
