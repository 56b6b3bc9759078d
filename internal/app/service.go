package app

import (
	"database/sql"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/pricescope/config"
	"github.com/guttosm/pricescope/internal/service"
	"github.com/guttosm/pricescope/internal/storage"
)

// Services bundles the read services shared by the HTTP API and the CLI.
type Services struct {
	Offers  service.OfferService
	History service.HistoryService
}

// NewServices builds the services over Postgres. When rdb is non-nil the
// daily series reads go through the Redis cache.
func NewServices(db *sql.DB, rdb *redis.Client, cfg config.Config) Services {
	repo := storage.NewPostgresRepository(db)

	var history storage.HistoryRepository = repo
	if rdb != nil {
		history = storage.NewCachingHistoryRepository(rdb, cfg.Redis.TTL, repo, "")
	}

	return Services{
		Offers:  service.NewOfferService(repo, cfg.Query.Timeout),
		History: service.NewHistoryService(history, cfg.Query.Timeout, cfg.Query.SupplierSampleCap),
	}
}
