package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pricescope/internal/domain/dto"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/query"
)

// deadlineOfferService records whether the request context carried a deadline.
type deadlineOfferService struct {
	hadDeadline bool
}

func (d *deadlineOfferService) List(ctx context.Context, spec query.Spec) (models.OfferPage, error) {
	_, d.hadDeadline = ctx.Deadline()
	return models.OfferPage{Rows: []models.Offer{{ID: "a"}}, PageSize: spec.PageSize}, nil
}

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	offers := &deadlineOfferService{}
	hist := &mockHistoryService{hist: &models.ProductHistory{ProductID: "p-1"}}
	r := NewRouter(NewHandler(offers, hist), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers?sort=price", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if !offers.hadDeadline {
		t.Fatalf("expected the timeout middleware to set a deadline")
	}

	var out dto.OfferPageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Rows) != 1 || out.Sort != "price" || out.Order != "asc" {
		t.Fatalf("unexpected body: %+v", out)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/p-1/history?preset=all", nil))
	if w.Code != http.StatusOK || hist.gotID != "p-1" || !hist.gotRange.IsUnbounded() {
		t.Fatalf("history route not wired: code=%d id=%q range=%+v", w.Code, hist.gotID, hist.gotRange)
	}
}

func TestNewRouter_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&deadlineOfferService{}, &mockHistoryService{}), 2)

	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil))
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", last)
	}
}

func TestNewRouter_HistoryNilResultIsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&deadlineOfferService{}, &mockHistoryService{}), 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/p-9/history?from=2024-01-01&to=2024-01-31", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out dto.ProductHistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.ProductID != "p-9" || len(out.Series) != 0 || out.Range.From == nil || *out.Range.From != "2024-01-01" {
		t.Fatalf("unexpected body: %+v", out)
	}
}
