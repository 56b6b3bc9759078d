package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/query"
	"github.com/guttosm/pricescope/internal/series"
)

// MemoryRepository is an in-process Repository over a fixed set of offers.
// It follows the same filter, ordering and NULL placement rules as the
// Postgres repository and derives daily points with series.Bucket.
type MemoryRepository struct {
	mu     sync.RWMutex
	offers []models.Offer
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(offers ...models.Offer) *MemoryRepository {
	return &MemoryRepository{offers: append([]models.Offer(nil), offers...)}
}

// Add appends offers to the store.
func (m *MemoryRepository) Add(offers ...models.Offer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers = append(m.offers, offers...)
}

func (m *MemoryRepository) ListOffers(ctx context.Context, spec query.Spec) ([]models.Offer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	matched := make([]models.Offer, 0, len(m.offers))
	for _, o := range m.offers {
		if matches(o, spec.SupplierTerm(), spec.SKUTerm()) {
			matched = append(matched, o)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareOffers(matched[i], matched[j], spec.Sort)
		if !spec.Ascending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return matched[i].ID < matched[j].ID
	})

	from, to := spec.Range()
	if from >= len(matched) {
		return []models.Offer{}, nil
	}
	if to >= len(matched) {
		to = len(matched) - 1
	}
	return matched[from : to+1], nil
}

func (m *MemoryRepository) DailySeries(ctx context.Context, productID string, r daterange.Range) ([]models.DailyPricePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return series.Within(series.Bucket(m.byProduct(productID)), r.From, r.To), nil
}

func (m *MemoryRepository) LatestOffer(ctx context.Context, productID string) (*models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var latest *models.Offer
	for _, o := range m.byProduct(productID) {
		o := o
		if latest == nil || newer(o, *latest) {
			latest = &o
		}
	}
	return latest, nil
}

func (m *MemoryRepository) SupplierSample(ctx context.Context, productID string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for _, o := range m.byProduct(productID) {
		if len(out) >= limit {
			break
		}
		if o.Supplier != nil {
			out = append(out, *o.Supplier)
		}
	}
	return out, nil
}

func (m *MemoryRepository) byProduct(productID string) []models.Offer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Offer
	for _, o := range m.offers {
		if o.ProductID != nil && *o.ProductID == productID {
			out = append(out, o)
		}
	}
	return out
}

// matches applies the OR of the two substring filters. Empty terms are
// inactive; with both inactive every offer matches.
func matches(o models.Offer, supplier, sku string) bool {
	if supplier == "" && sku == "" {
		return true
	}
	return (supplier != "" && containsFold(o.Supplier, supplier)) ||
		(sku != "" && containsFold(o.SourceSKU, sku))
}

func containsFold(v *string, term string) bool {
	if v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*v), strings.ToLower(term))
}

// compareOffers orders two offers by key in ascending order, with NULL
// greater than any value as Postgres does.
func compareOffers(a, b models.Offer, key query.SortKey) int {
	switch key {
	case query.SortSupplier:
		return compareStrings(a.Supplier, b.Supplier)
	case query.SortSKU:
		return compareStrings(a.SourceSKU, b.SourceSKU)
	case query.SortCurrency:
		return compareStrings(a.Currency, b.Currency)
	case query.SortProductID:
		return compareStrings(a.ProductID, b.ProductID)
	case query.SortPrice:
		if c, done := compareNulls(a.Price.Valid, b.Price.Valid); done {
			return c
		}
		return a.Price.Decimal.Cmp(b.Price.Decimal)
	default:
		return compareTimes(a.ObservedAt, b.ObservedAt)
	}
}

func compareStrings(a, b *string) int {
	if c, done := compareNulls(a != nil, b != nil); done {
		return c
	}
	return strings.Compare(*a, *b)
}

func compareTimes(a, b *time.Time) int {
	if c, done := compareNulls(a != nil, b != nil); done {
		return c
	}
	return a.Compare(*b)
}

func compareNulls(aValid, bValid bool) (int, bool) {
	switch {
	case aValid && bValid:
		return 0, false
	case !aValid && !bValid:
		return 0, true
	case !aValid:
		return 1, true
	default:
		return -1, true
	}
}

func newer(a, b models.Offer) bool {
	switch {
	case a.ObservedAt == nil:
		return false
	case b.ObservedAt == nil:
		return true
	case a.ObservedAt.Equal(*b.ObservedAt):
		return a.ID < b.ID
	default:
		return a.ObservedAt.After(*b.ObservedAt)
	}
}
