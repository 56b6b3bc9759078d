package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/logger"
	"github.com/guttosm/pricescope/internal/query"
	"github.com/guttosm/pricescope/internal/storage"
)

// OfferService lists supplier offers for the browse view.
type OfferService interface {
	// List returns one page of offers. On failure the page is empty (no
	// rows, HasNext false) and the error carries the message to show.
	List(ctx context.Context, spec query.Spec) (models.OfferPage, error)
}

type offerService struct {
	repo    storage.OfferRepository
	timeout time.Duration
}

// NewOfferService builds an OfferService. A zero timeout leaves the caller's
// deadline as the only bound.
func NewOfferService(repo storage.OfferRepository, timeout time.Duration) OfferService {
	return &offerService{repo: repo, timeout: timeout}
}

func (s *offerService) List(ctx context.Context, spec query.Spec) (models.OfferPage, error) {
	page := models.OfferPage{Rows: []models.Offer{}, Page: spec.Page, PageSize: spec.PageSize}

	if err := spec.Validate(); err != nil {
		return page, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.repo.ListOffers(ctx, spec)
	if err != nil {
		if superseded(err) {
			return page, err
		}
		logger.L().Warn().Err(err).
			Str("supplier", spec.Supplier).
			Str("sku", spec.SKU).
			Str("sort", string(spec.Sort)).
			Int("page", spec.Page).
			Msg("offer listing failed")
		return page, err
	}

	if rows != nil {
		page.Rows = rows
	}
	page.HasNext = query.HasNextPage(len(rows), spec.PageSize)
	return page, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// superseded reports whether the caller abandoned the request; those failures
// are dropped without a log line.
func superseded(err error) bool {
	return errors.Is(err, context.Canceled)
}
