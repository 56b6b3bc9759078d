package dto

import (
	"time"

	"github.com/guttosm/pricescope/internal/domain/models"
)

// OfferResponse is one row of the GET /api/v1/offers listing.
//
// Nullable columns are rendered as JSON null. ProductURL links to the
// product detail view and is null when the offer has no product.
type OfferResponse struct {
	ID         string     `json:"id" example:"3f1c9a"`
	Supplier   *string    `json:"supplier" example:"Acme Components"`
	SourceSKU  *string    `json:"source_sku" example:"AC-1042"`
	Price      *string    `json:"price" example:"12.5000"`
	Currency   *string    `json:"currency" example:"EUR"`
	ObservedAt *time.Time `json:"observed_at" example:"2024-06-30T09:15:00Z"`
	ProductID  *string    `json:"product_id" example:"p-778"`
	ProductURL *string    `json:"product_url" example:"/product/p-778"`
}

// OfferPageResponse is the body of GET /api/v1/offers.
//
// HasNext is true whenever the page is full, including the last page of a
// result set whose size is an exact multiple of PageSize. Message is set
// only when the page could not be loaded, in which case Rows is empty.
type OfferPageResponse struct {
	Rows     []OfferResponse `json:"rows"`
	Page     int             `json:"page" example:"0"`
	PageSize int             `json:"page_size" example:"25"`
	HasNext  bool            `json:"has_next" example:"true"`
	Sort     string          `json:"sort" example:"observed_at"`
	Order    string          `json:"order" example:"desc"`
	Message  string          `json:"message,omitempty" example:"failed to load offers: context deadline exceeded"`
}

// ProductURL is the detail view path of a product.
func ProductURL(productID string) string {
	return "/product/" + productID
}

// NewOfferPageResponse maps a page plus the sort it was loaded with.
func NewOfferPageResponse(page models.OfferPage, sort string, ascending bool) OfferPageResponse {
	resp := OfferPageResponse{
		Rows:     make([]OfferResponse, 0, len(page.Rows)),
		Page:     page.Page,
		PageSize: page.PageSize,
		HasNext:  page.HasNext,
		Sort:     sort,
		Order:    "desc",
	}
	if ascending {
		resp.Order = "asc"
	}
	for _, o := range page.Rows {
		resp.Rows = append(resp.Rows, NewOfferResponse(o))
	}
	return resp
}

func NewOfferResponse(o models.Offer) OfferResponse {
	out := OfferResponse{
		ID:         o.ID,
		Supplier:   o.Supplier,
		SourceSKU:  o.SourceSKU,
		Currency:   o.Currency,
		ObservedAt: o.ObservedAt,
		ProductID:  o.ProductID,
	}
	if o.Price.Valid {
		p := o.Price.Decimal.String()
		out.Price = &p
	}
	if o.ProductID != nil && *o.ProductID != "" {
		u := ProductURL(*o.ProductID)
		out.ProductURL = &u
	}
	return out
}
