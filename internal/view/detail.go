package view

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/service"
)

// ProductDetailState is a snapshot of the product detail view.
type ProductDetailState struct {
	ProductID string
	Selection daterange.Selection
	Range     daterange.Range
	Series    []models.DailyPricePoint
	Meta      models.Meta
	Stats     *models.RangeStats
	Loading   bool
	Err       string
}

// ProductDetail is the state of one product detail view.
type ProductDetail struct {
	svc service.HistoryService
	now func() time.Time

	mu    sync.Mutex
	loads tracker
	state ProductDetailState
}

func NewProductDetail(svc service.HistoryService, productID string) *ProductDetail {
	return &ProductDetail{
		svc: svc,
		now: time.Now,
		state: ProductDetailState{
			ProductID: productID,
			Selection: daterange.NewSelection(),
			Series:    []models.DailyPricePoint{},
		},
	}
}

// State returns a copy of the current state.
func (v *ProductDetail) State() ProductDetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	st := v.state
	st.Series = append([]models.DailyPricePoint(nil), v.state.Series...)
	return st
}

// Load resolves sel against today and fetches the history. An invalid
// selection is reported like a failed fetch. It reports whether the
// result was applied.
func (v *ProductDetail) Load(ctx context.Context, sel daterange.Selection) bool {
	v.mu.Lock()
	ctx, gen := v.loads.begin(ctx)
	productID := v.state.ProductID
	v.state.Selection = sel
	v.state.Loading = true
	v.mu.Unlock()

	rng, err := sel.Resolve(v.now())
	var h *models.ProductHistory
	if err == nil {
		h, err = v.svc.Load(ctx, productID, rng)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loads.current(gen) {
		return false
	}
	v.loads.finish(gen)

	v.state.Loading = false
	v.state.Range = rng
	if err != nil {
		v.state.Series = []models.DailyPricePoint{}
		v.state.Meta = models.Meta{}
		v.state.Stats = nil
		v.state.Err = err.Error()
		return true
	}
	v.state.Series = h.Series
	v.state.Meta = h.Meta
	v.state.Stats = h.Stats
	v.state.Err = ""
	return true
}

func (v *ProductDetail) Reload(ctx context.Context) bool {
	return v.Load(ctx, v.State().Selection)
}

// SelectPreset switches preset and drops any custom dates.
func (v *ProductDetail) SelectPreset(ctx context.Context, p daterange.Preset) bool {
	sel := v.State().Selection
	sel.SelectPreset(p)
	return v.Load(ctx, sel)
}

func (v *ProductDetail) SetFrom(ctx context.Context, from string) bool {
	sel := v.State().Selection
	sel.SetFrom(from)
	return v.Load(ctx, sel)
}

func (v *ProductDetail) SetTo(ctx context.Context, to string) bool {
	sel := v.State().Selection
	sel.SetTo(to)
	return v.Load(ctx, sel)
}
