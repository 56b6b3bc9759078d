package models

import "time"

// DailyPricePoint is one row of the v_price_history view: the offers of a
// product observed during a single UTC calendar day.
//
// Invariant: MinPrice <= AvgPrice <= MaxPrice whenever Samples > 0. Days
// without samples never appear in a series.
type DailyPricePoint struct {
	Day      time.Time `json:"day"`
	Samples  int64     `json:"samples"`
	MinPrice float64   `json:"min_price"`
	AvgPrice float64   `json:"avg_price"`
	MaxPrice float64   `json:"max_price"`
}

// Meta summarizes a product over its full history, independent of the
// selected date range.
//
// The latest-offer fields are nil when the product has no offers.
// SupplierCount counts distinct suppliers within a bounded sample of the
// product's offers, so it can undercount for very large products.
type Meta struct {
	SKU              *string    `json:"sku"`
	Supplier         *string    `json:"supplier"`
	Currency         *string    `json:"currency"`
	LatestPrice      *float64   `json:"latest_price"`
	LatestObservedAt *time.Time `json:"latest_observed_at"`
	SupplierCount    int        `json:"supplier_count"`
}

// RangeStats are derived from the loaded series only.
//
// Avg is the unweighted mean of the daily averages, not the mean of the
// underlying offers; days with few samples weigh as much as busy days.
type RangeStats struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// ProductHistory is the full result of a product detail load.
type ProductHistory struct {
	ProductID string            `json:"product_id"`
	From      *time.Time        `json:"from"`
	To        *time.Time        `json:"to"`
	Series    []DailyPricePoint `json:"series"`
	Meta      Meta              `json:"meta"`
	Stats     *RangeStats       `json:"stats"`
}
