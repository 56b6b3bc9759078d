package view

import (
	"context"
	"sync"

	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/query"
	"github.com/guttosm/pricescope/internal/service"
)

// OfferListState is a snapshot of the offer listing.
type OfferListState struct {
	Spec    query.Spec
	Page    models.OfferPage
	Loading bool
	Err     string
}

// OfferList is the state of one offer listing view.
type OfferList struct {
	svc service.OfferService

	mu    sync.Mutex
	loads tracker
	state OfferListState
}

func NewOfferList(svc service.OfferService) *OfferList {
	spec := query.DefaultSpec()
	return &OfferList{
		svc: svc,
		state: OfferListState{
			Spec: spec,
			Page: models.OfferPage{Rows: []models.Offer{}, PageSize: spec.PageSize},
		},
	}
}

// State returns a copy of the current state.
func (v *OfferList) State() OfferListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load runs spec and stores its result unless a newer load started in the
// meantime. It reports whether the result was applied.
func (v *OfferList) Load(ctx context.Context, spec query.Spec) bool {
	v.mu.Lock()
	ctx, gen := v.loads.begin(ctx)
	v.state.Spec = spec
	v.state.Loading = true
	v.mu.Unlock()

	page, err := v.svc.List(ctx, spec)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loads.current(gen) {
		return false
	}
	v.loads.finish(gen)

	v.state.Loading = false
	if err != nil {
		v.state.Page = models.OfferPage{Rows: []models.Offer{}, Page: spec.Page, PageSize: spec.PageSize}
		v.state.Err = err.Error()
		return true
	}
	v.state.Page = page
	v.state.Err = ""
	return true
}

// Reload repeats the current query.
func (v *OfferList) Reload(ctx context.Context) bool {
	return v.Load(ctx, v.State().Spec)
}

func (v *OfferList) ToggleSort(ctx context.Context, key query.SortKey) bool {
	return v.Load(ctx, v.State().Spec.ToggleSort(key))
}

func (v *OfferList) SetSupplierFilter(ctx context.Context, text string) bool {
	return v.Load(ctx, v.State().Spec.WithSupplierFilter(text))
}

func (v *OfferList) SetSKUFilter(ctx context.Context, text string) bool {
	return v.Load(ctx, v.State().Spec.WithSKUFilter(text))
}

// SetPageSize switches to one of the allowed page sizes.
func (v *OfferList) SetPageSize(ctx context.Context, n int) (bool, error) {
	spec, err := v.State().Spec.WithPageSize(n)
	if err != nil {
		return false, err
	}
	return v.Load(ctx, spec), nil
}

// NextPage advances only when the current page reported more rows.
func (v *OfferList) NextPage(ctx context.Context) bool {
	st := v.State()
	if !st.Page.HasNext {
		return false
	}
	return v.Load(ctx, st.Spec.NextPage())
}

// PrevPage is a no-op on the first page.
func (v *OfferList) PrevPage(ctx context.Context) bool {
	spec := v.State().Spec
	if spec.Page == 0 {
		return false
	}
	return v.Load(ctx, spec.PrevPage())
}
