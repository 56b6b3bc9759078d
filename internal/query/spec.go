// Package query turns the offer listing state (filters, sort, page) into a
// single deterministic query against the supplier_offers collection.
package query

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SortKey is a sortable offer column.
type SortKey string

const (
	SortObservedAt SortKey = "observed_at"
	SortSupplier   SortKey = "supplier"
	SortSKU        SortKey = "source_sku"
	SortPrice      SortKey = "price"
	SortCurrency   SortKey = "currency"
	SortProductID  SortKey = "product_id"
)

// PageSizes are the allowed page sizes, smallest first.
var PageSizes = []int{25, 50, 100}

// DefaultPageSize is the page size of a fresh listing.
const DefaultPageSize = 25

var (
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidPage     = errors.New("page must not be negative")
)

// SortKeys lists every accepted sort key.
func SortKeys() []SortKey {
	return []SortKey{SortObservedAt, SortSupplier, SortSKU, SortPrice, SortCurrency, SortProductID}
}

// ParseSortKey validates a sort key. An empty string yields SortObservedAt.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortObservedAt, nil
	}
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

// Valid reports whether k is one of SortKeys.
func (k SortKey) Valid() bool {
	for _, known := range SortKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Spec is the listing state a query is built from.
//
// Spec is a value: the transition methods return a modified copy. Every
// transition that changes the shape of the result set (filters, sort,
// page size) moves back to the first page.
type Spec struct {
	Supplier  string
	SKU       string
	Sort      SortKey
	Ascending bool
	Page      int
	PageSize  int
}

// DefaultSpec returns the initial listing: newest observations first.
func DefaultSpec() Spec {
	return Spec{
		Sort:      SortObservedAt,
		Ascending: false,
		PageSize:  DefaultPageSize,
	}
}

// ToggleSort flips the direction when k is already active, otherwise makes
// k active in ascending order.
func (s Spec) ToggleSort(k SortKey) Spec {
	if k == s.Sort {
		s.Ascending = !s.Ascending
	} else {
		s.Sort = k
		s.Ascending = true
	}
	s.Page = 0
	return s
}

// WithSupplierFilter replaces the supplier filter text.
func (s Spec) WithSupplierFilter(text string) Spec {
	s.Supplier = text
	s.Page = 0
	return s
}

// WithSKUFilter replaces the SKU filter text.
func (s Spec) WithSKUFilter(text string) Spec {
	s.SKU = text
	s.Page = 0
	return s
}

// WithPageSize changes the page size. Sizes outside PageSizes are rejected.
func (s Spec) WithPageSize(n int) (Spec, error) {
	if !ValidPageSize(n) {
		return s, fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	s.PageSize = n
	s.Page = 0
	return s, nil
}

// NextPage advances one page.
func (s Spec) NextPage() Spec {
	s.Page++
	return s
}

// PrevPage goes back one page, stopping at the first.
func (s Spec) PrevPage() Spec {
	if s.Page > 0 {
		s.Page--
	}
	return s
}

// Validate checks the sort key, page and page size.
func (s Spec) Validate() error {
	if !s.Sort.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, s.Sort)
	}
	if !ValidPageSize(s.PageSize) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, s.PageSize)
	}
	if s.Page < 0 {
		return ErrInvalidPage
	}
	// The last row index of the page must fit in an int.
	if s.Page > math.MaxInt/s.PageSize-1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, s.Page)
	}
	return nil
}

// SupplierTerm is the effective supplier filter; "" means no filter.
func (s Spec) SupplierTerm() string {
	return strings.TrimSpace(s.Supplier)
}

// SKUTerm is the effective SKU filter; "" means no filter.
func (s Spec) SKUTerm() string {
	return strings.TrimSpace(s.SKU)
}

// Range returns the inclusive zero-based row range of the current page.
func (s Spec) Range() (from, to int) {
	from = s.Page * s.PageSize
	return from, from + s.PageSize - 1
}

// HasNextPage reports whether another page may exist after one that
// returned rows rows. A full page counts as "maybe more": when the total is
// an exact multiple of the page size the last page still reports a next
// page, which then comes back empty.
func HasNextPage(rows, pageSize int) bool {
	return pageSize > 0 && rows == pageSize
}
