package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/pricescope/internal/daterange"
	"github.com/guttosm/pricescope/internal/domain/models"
	"github.com/guttosm/pricescope/internal/query"
	"github.com/shopspring/decimal"
)

// OfferRepository runs the offer listing query.
type OfferRepository interface {
	ListOffers(ctx context.Context, spec query.Spec) ([]models.Offer, error)
}

// HistoryRepository reads the data behind a product detail view.
type HistoryRepository interface {
	// DailySeries returns the pre-aggregated daily points of a product within
	// the inclusive range, ordered by day.
	DailySeries(ctx context.Context, productID string, r daterange.Range) ([]models.DailyPricePoint, error)
	// LatestOffer returns the most recently observed offer, or nil when the
	// product has none.
	LatestOffer(ctx context.Context, productID string) (*models.Offer, error)
	// SupplierSample returns the supplier of up to limit offers that have one.
	SupplierSample(ctx context.Context, productID string, limit int) ([]string, error)
}

// Repository is the full read contract of the offer store.
type Repository interface {
	OfferRepository
	HistoryRepository
}

// PostgresRepository implements Repository over database/sql.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListOffers builds the listing query from spec and returns at most one page.
func (r *PostgresRepository) ListOffers(ctx context.Context, spec query.Spec) ([]models.Offer, error) {
	q, err := query.Build(spec)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q.SQL(), q.Args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Offer, 0, q.Limit)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return out, nil
}

// DailySeries reads v_price_history for a product.
func (r *PostgresRepository) DailySeries(ctx context.Context, productID string, rng daterange.Range) ([]models.DailyPricePoint, error) {
	// $1 is always the product; date placeholders follow when present.
	conditions := "product_id = $1"
	args := []any{productID}
	if rng.From != nil {
		args = append(args, *rng.From)
		conditions += fmt.Sprintf(" AND day >= $%d", len(args))
	}
	if rng.To != nil {
		args = append(args, *rng.To)
		conditions += fmt.Sprintf(" AND day <= $%d", len(args))
	}

	stmt := fmt.Sprintf(`
		SELECT day, samples, min_price, avg_price, max_price
		FROM v_price_history
		WHERE %s
		ORDER BY day ASC`, conditions)

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.DailyPricePoint
	for rows.Next() {
		var p models.DailyPricePoint
		if err := rows.Scan(&p.Day, &p.Samples, &p.MinPrice, &p.AvgPrice, &p.MaxPrice); err != nil {
			return nil, fmt.Errorf("scan daily point: %w", err)
		}
		p.Day = p.Day.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	return out, nil
}

// LatestOffer returns the newest offer of a product. Offers without a
// timestamp sort after every dated one; ties on the timestamp are broken
// by id.
func (r *PostgresRepository) LatestOffer(ctx context.Context, productID string) (*models.Offer, error) {
	stmt := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE product_id = $1
		ORDER BY observed_at DESC NULLS LAST, id ASC
		LIMIT 1`, strings.Join(query.Columns, ", "), query.Table)

	o, err := scanOffer(r.db.QueryRowContext(ctx, stmt, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest offer: %w", err)
	}
	return &o, nil
}

// SupplierSample reads the non-null suppliers of at most limit offers.
func (r *PostgresRepository) SupplierSample(ctx context.Context, productID string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT supplier
		FROM supplier_offers
		WHERE product_id = $1 AND supplier IS NOT NULL
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("supplier sample: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("supplier sample: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanOffer reads one row in query.Columns order, mapping NULLs to nil.
func scanOffer(s scanner) (models.Offer, error) {
	var (
		o                                  models.Offer
		supplier, sku, currency, productID sql.NullString
		observedAt                         sql.NullTime
		price                              decimal.NullDecimal
	)
	if err := s.Scan(&o.ID, &supplier, &sku, &price, &currency, &observedAt, &productID); err != nil {
		return models.Offer{}, err
	}

	o.Supplier = nullString(supplier)
	o.SourceSKU = nullString(sku)
	o.Price = price
	o.Currency = nullString(currency)
	o.ProductID = nullString(productID)
	if observedAt.Valid {
		t := observedAt.Time.UTC()
		o.ObservedAt = &t
	}
	return o, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
