package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/logger"
	"github.com/guttosm/pricescope/internal/series"
	"github.com/guttosm/pricescope/internal/storage"
)

// DefaultSupplierSampleCap bounds the rows scanned for the supplier count.
const DefaultSupplierSampleCap = 1000

// HistoryService loads the price history and summary of one product.
type HistoryService interface {
	// Load fetches the daily series within r, the latest offer and the
	// supplier sample concurrently. Either all three succeed or the error of
	// the first failure is returned with no history.
	Load(ctx context.Context, productID string, r daterange.Range) (*models.ProductHistory, error)
}

type historyService struct {
	repo      storage.HistoryRepository
	timeout   time.Duration
	sampleCap int
}

// NewHistoryService builds a HistoryService. A non-positive sampleCap falls
// back to DefaultSupplierSampleCap.
func NewHistoryService(repo storage.HistoryRepository, timeout time.Duration, sampleCap int) HistoryService {
	if sampleCap <= 0 {
		sampleCap = DefaultSupplierSampleCap
	}
	return &historyService{repo: repo, timeout: timeout, sampleCap: sampleCap}
}

func (s *historyService) Load(ctx context.Context, productID string, r daterange.Range) (*models.ProductHistory, error) {
	out := &models.ProductHistory{
		ProductID: productID,
		From:      r.From,
		To:        r.To,
		Series:    []models.DailyPricePoint{},
	}
	if productID == "" {
		return out, nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var (
		points    []models.DailyPricePoint
		latest    *models.Offer
		suppliers []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		points, err = s.repo.DailySeries(gctx, productID, r)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.repo.LatestOffer(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = s.repo.SupplierSample(gctx, productID, s.sampleCap)
		return err
	})
	if err := g.Wait(); err != nil {
		if superseded(err) {
			return nil, err
		}
		logger.L().Warn().Err(err).
			Str("product_id", productID).
			Str("from", r.FromString()).
			Str("to", r.ToString()).
			Msg("history load failed")
		return nil, err
	}

	out.Series = series.Normalize(points)
	out.Stats = series.Stats(out.Series)
	out.Meta = buildMeta(latest, suppliers)
	return out, nil
}

func buildMeta(latest *models.Offer, suppliers []string) models.Meta {
	meta := models.Meta{SupplierCount: countDistinct(suppliers)}
	if latest == nil {
		return meta
	}
	meta.SKU = latest.SourceSKU
	meta.Supplier = latest.Supplier
	meta.Currency = latest.Currency
	meta.LatestObservedAt = latest.ObservedAt
	if latest.Price.Valid {
		p := latest.Price.Decimal.InexactFloat64()
		meta.LatestPrice = &p
	}
	return meta
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
