package query

import (
	"fmt"
	"strings"
)

// Table is the offer collection queried by the listing.
const Table = "supplier_offers"

// Columns are the offer columns returned by the listing, in scan order.
var Columns = []string{"id", "supplier", "source_sku", "price", "currency", "observed_at", "product_id"}

// Query is a built listing query. Where holds positional placeholders
// ($1, $2) bound to Args in order.
type Query struct {
	Where   string
	Args    []any
	OrderBy string
	Limit   int
	Offset  int
}

// Build translates a Spec into a Query.
//
// Supplier and SKU filters are case-insensitive substring matches and are
// combined with OR: an offer matches when its supplier contains the
// supplier text or its SKU contains the SKU text.
func Build(s Spec) (Query, error) {
	if err := s.Validate(); err != nil {
		return Query{}, err
	}

	var (
		ors  []string
		args []any
	)
	if term := s.SupplierTerm(); term != "" {
		args = append(args, LikePattern(term))
		ors = append(ors, fmt.Sprintf("supplier ILIKE $%d", len(args)))
	}
	if term := s.SKUTerm(); term != "" {
		args = append(args, LikePattern(term))
		ors = append(ors, fmt.Sprintf("source_sku ILIKE $%d", len(args)))
	}

	dir := "DESC"
	if s.Ascending {
		dir = "ASC"
	}

	from, _ := s.Range()
	return Query{
		Where:   strings.Join(ors, " OR "),
		Args:    args,
		OrderBy: fmt.Sprintf("%s %s, id ASC", s.Sort, dir),
		Limit:   s.PageSize,
		Offset:  from,
	}, nil
}

// SQL renders the query as a SELECT over Table.
func (q Query) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(Table)
	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}
	fmt.Fprintf(&b, " ORDER BY %s LIMIT %d OFFSET %d", q.OrderBy, q.Limit, q.Offset)
	return b.String()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps text as a substring ILIKE pattern with wildcards in the
// text itself escaped.
func LikePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
