package dto

import (
	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
)

// PricePointResponse is one day of the price series.
type PricePointResponse struct {
	Day      string  `json:"day" example:"2024-06-20"`
	Samples  int64   `json:"samples" example:"2"`
	MinPrice float64 `json:"min_price" example:"10"`
	AvgPrice float64 `json:"avg_price" example:"15"`
	MaxPrice float64 `json:"max_price" example:"20"`
}

// RangeResponse is the resolved date range; a null side is unbounded.
type RangeResponse struct {
	Preset string  `json:"preset" example:"90d"`
	From   *string `json:"from" example:"2024-04-01"`
	To     *string `json:"to" example:"2024-06-30"`
}

// ProductHistoryResponse is the body of GET /api/v1/products/{id}/history.
//
// Meta covers the whole history of the product while Series and Stats
// cover Range only. Stats is null for an empty series.
type ProductHistoryResponse struct {
	ProductID string               `json:"product_id" example:"p-778"`
	Range     RangeResponse        `json:"range"`
	Series    []PricePointResponse `json:"series"`
	Meta      models.Meta          `json:"meta"`
	Stats     *models.RangeStats   `json:"stats"`
}

func NewProductHistoryResponse(h *models.ProductHistory, preset daterange.Preset) ProductHistoryResponse {
	rng := daterange.Range{From: h.From, To: h.To}
	resp := ProductHistoryResponse{
		ProductID: h.ProductID,
		Range: RangeResponse{
			Preset: string(preset),
			From:   optional(rng.FromString()),
			To:     optional(rng.ToString()),
		},
		Series: make([]PricePointResponse, 0, len(h.Series)),
		Meta:   h.Meta,
		Stats:  h.Stats,
	}
	for _, p := range h.Series {
		resp.Series = append(resp.Series, PricePointResponse{
			Day:      p.Day.UTC().Format(daterange.DateLayout),
			Samples:  p.Samples,
			MinPrice: p.MinPrice,
			AvgPrice: p.AvgPrice,
			MaxPrice: p.MaxPrice,
		})
	}
	return resp
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
