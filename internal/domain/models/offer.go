package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer represents a single observed supplier price quote, one row of
// the supplier_offers table.
//
// Every column except ID is nullable in the store, so the optional fields
// are pointers (or a NullDecimal for the price) to keep "absent" distinct
// from a zero value.
//
// swagger:model Offer
type Offer struct {
	ID         string              `json:"id"`
	Supplier   *string             `json:"supplier"`
	SourceSKU  *string             `json:"source_sku"`
	Price      decimal.NullDecimal `json:"price"`
	Currency   *string             `json:"currency"`
	ObservedAt *time.Time          `json:"observed_at"`
	ProductID  *string             `json:"product_id"`
}

// OfferPage is one page of the offer listing.
//
// HasNext is optimistic: it is set whenever the page came back full, so a
// result set of exactly PageSize rows reports a next page that turns out
// to be empty.
type OfferPage struct {
	Rows     []Offer `json:"rows"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	HasNext  bool    `json:"has_next"`
}
