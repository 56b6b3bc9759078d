package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NoFilters(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\t"} {
		s := DefaultSpec().WithSupplierFilter(text).WithSKUFilter(text)
		q, err := Build(s)
		require.NoError(t, err)

		assert.Empty(t, q.Where)
		assert.Empty(t, q.Args)
		assert.Equal(t,
			"SELECT id, supplier, source_sku, price, currency, observed_at, product_id FROM supplier_offers ORDER BY observed_at DESC, id ASC LIMIT 25 OFFSET 0",
			q.SQL())
	}
}

func TestBuild_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		supplier  string
		sku       string
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "supplier only",
			supplier:  "Acme",
			wantWhere: "supplier ILIKE $1",
			wantArgs:  []any{"%Acme%"},
		},
		{
			name:      "sku only",
			sku:       "AB-12",
			wantWhere: "source_sku ILIKE $1",
			wantArgs:  []any{"%AB-12%"},
		},
		{
			name:      "both combine with OR",
			supplier:  "acme",
			sku:       "ab",
			wantWhere: "supplier ILIKE $1 OR source_sku ILIKE $2",
			wantArgs:  []any{"%acme%", "%ab%"},
		},
		{
			name:      "whitespace supplier is ignored",
			supplier:  "  ",
			sku:       " ab ",
			wantWhere: "source_sku ILIKE $1",
			wantArgs:  []any{"%ab%"},
		},
		{
			name:      "wildcards are literal",
			supplier:  `50%_off\`,
			wantWhere: "supplier ILIKE $1",
			wantArgs:  []any{`%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := Build(DefaultSpec().WithSupplierFilter(tt.supplier).WithSKUFilter(tt.sku))
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, q.Where)
			assert.Equal(t, tt.wantArgs, q.Args)
			assert.Contains(t, q.SQL(), " WHERE "+tt.wantWhere+" ORDER BY ")
		})
	}
}

func TestBuild_OrderAndPaging(t *testing.T) {
	t.Parallel()

	s := DefaultSpec().ToggleSort(SortPrice)
	s, err := s.WithPageSize(50)
	require.NoError(t, err)
	s = s.NextPage().NextPage()

	q, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, "price ASC, id ASC", q.OrderBy)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, 100, q.Offset)

	q, err = Build(s.ToggleSort(SortPrice))
	require.NoError(t, err)
	assert.Equal(t, "price DESC, id ASC", q.OrderBy)
	assert.Equal(t, 0, q.Offset)
}

func TestBuild_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Build(Spec{Sort: "bogus", PageSize: 25})
	assert.ErrorIs(t, err, ErrInvalidSortKey)

	_, err = Build(Spec{Sort: SortPrice, PageSize: 7})
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = Build(Spec{Sort: SortPrice, PageSize: 100, Page: math.MaxInt / 50})
	assert.ErrorIs(t, err, ErrInvalidPage)
}
