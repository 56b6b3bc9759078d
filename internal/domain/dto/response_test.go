package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
)

func TestNewOfferPageResponse(t *testing.T) {
	pid, sup := "p-1", "Acme"
	at := time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)
	page := models.OfferPage{
		Rows: []models.Offer{
			{ID: "a", Supplier: &sup, ProductID: &pid, ObservedAt: &at, Price: decimal.NewNullDecimal(decimal.RequireFromString("12.50"))},
			{ID: "b"},
		},
		Page:     2,
		PageSize: 25,
		HasNext:  false,
	}

	resp := NewOfferPageResponse(page, "price", true)
	if resp.Order != "asc" || resp.Sort != "price" || resp.Page != 2 || resp.PageSize != 25 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("rows=%d", len(resp.Rows))
	}
	a, b := resp.Rows[0], resp.Rows[1]
	if a.ProductURL == nil || *a.ProductURL != "/product/p-1" {
		t.Fatalf("product_url=%v", a.ProductURL)
	}
	if a.Price == nil || *a.Price != "12.5" {
		t.Fatalf("price=%v", a.Price)
	}
	if b.ProductURL != nil || b.Price != nil || b.Supplier != nil {
		t.Fatalf("nullable fields should stay nil: %+v", b)
	}

	if NewOfferPageResponse(page, "price", false).Order != "desc" {
		t.Fatalf("expected desc order")
	}
}

func TestNewOfferPageResponse_EmptyRowsAreArray(t *testing.T) {
	resp := NewOfferPageResponse(models.OfferPage{PageSize: 25}, "observed_at", false)
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(b, &decoded)
	if rows, ok := decoded["rows"].([]any); !ok || len(rows) != 0 {
		t.Fatalf("rows should encode as [], got %s", b)
	}
}

func TestNewProductHistoryResponse(t *testing.T) {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	h := &models.ProductHistory{
		ProductID: "p-1",
		From:      &from,
		Series: []models.DailyPricePoint{
			{Day: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), Samples: 2, MinPrice: 10, AvgPrice: 15, MaxPrice: 20},
		},
		Meta:  models.Meta{SupplierCount: 1},
		Stats: &models.RangeStats{Min: 10, Avg: 15, Max: 20},
	}

	resp := NewProductHistoryResponse(h, daterange.Last90Days)
	if resp.Range.Preset != "90d" || resp.Range.From == nil || *resp.Range.From != "2024-04-01" || resp.Range.To != nil {
		t.Fatalf("unexpected range: %+v", resp.Range)
	}
	if len(resp.Series) != 1 || resp.Series[0].Day != "2024-04-02" || resp.Series[0].AvgPrice != 15 {
		t.Fatalf("unexpected series: %+v", resp.Series)
	}
	if resp.Stats == nil || resp.Meta.SupplierCount != 1 {
		t.Fatalf("unexpected stats/meta: %+v %+v", resp.Stats, resp.Meta)
	}
}

func TestNewProductHistoryResponse_Empty(t *testing.T) {
	resp := NewProductHistoryResponse(&models.ProductHistory{ProductID: "x"}, daterange.AllTime)
	b, _ := json.Marshal(resp)
	var decoded map[string]any
	_ = json.Unmarshal(b, &decoded)
	if decoded["stats"] != nil {
		t.Fatalf("stats should be null, got %v", decoded["stats"])
	}
	if series, ok := decoded["series"].([]any); !ok || len(series) != 0 {
		t.Fatalf("series should encode as [], got %s", b)
	}
}
