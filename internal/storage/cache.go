package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/logger"
)

// CachingHistoryRepository decorates a HistoryRepository with a Redis cache
// for daily series. The view behind DailySeries only changes when offers
// are ingested, so entries simply expire after the TTL. Latest offer and
// supplier reads always go to the inner repository.
type CachingHistoryRepository struct {
	inner     HistoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ HistoryRepository = (*CachingHistoryRepository)(nil)

// NewCachingHistoryRepository wraps inner. A zero ttl defaults to 5 minutes
// and an empty namespace to "history". A nil client disables caching.
func NewCachingHistoryRepository(rdb *redis.Client, ttl time.Duration, inner HistoryRepository, namespace string) *CachingHistoryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "history"
	}
	return &CachingHistoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// DailySeries serves from cache when possible and fills it on a miss.
// Redis failures degrade to a direct read.
func (c *CachingHistoryRepository) DailySeries(ctx context.Context, productID string, r daterange.Range) ([]models.DailyPricePoint, error) {
	if c.rdb == nil {
		return c.inner.DailySeries(ctx, productID, r)
	}

	key := c.cacheKey(productID, r)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.DailyPricePoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.DailySeries(ctx, productID, r)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			logger.L().Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return out, nil
}

func (c *CachingHistoryRepository) LatestOffer(ctx context.Context, productID string) (*models.Offer, error) {
	return c.inner.LatestOffer(ctx, productID)
}

func (c *CachingHistoryRepository) SupplierSample(ctx context.Context, productID string, limit int) ([]string, error) {
	return c.inner.SupplierSample(ctx, productID, limit)
}

// cacheKey is namespace:product:from:to with "*" for an open side.
func (c *CachingHistoryRepository) cacheKey(productID string, r daterange.Range) string {
	from, to := r.FromString(), r.ToString()
	if from == "" {
		from = "*"
	}
	if to == "" {
		to = "*"
	}
	return fmt.Sprintf("%s:%s:%s:%s", c.namespace, safe(productID), from, to)
}

// safe percent-encodes the product id so the key separator never appears in
// it and distinct ids never share a key.
func safe(s string) string {
	return url.QueryEscape(s)
}
