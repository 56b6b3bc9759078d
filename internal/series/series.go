// Package series derives daily price points and range statistics.
package series

import (
	"sort"
	"time"

	"github.com/guttosm/pricescope/internal/domain/models"
)

// Stats summarizes a loaded series: the lowest daily minimum, the highest
// daily maximum and the plain mean of the daily averages. Daily averages
// are not weighted by their sample counts.
//
// Returns nil for an empty series.
func Stats(points []models.DailyPricePoint) *models.RangeStats {
	if len(points) == 0 {
		return nil
	}

	st := models.RangeStats{Min: points[0].MinPrice, Max: points[0].MaxPrice}
	var sum float64
	for _, p := range points {
		if p.MinPrice < st.Min {
			st.Min = p.MinPrice
		}
		if p.MaxPrice > st.Max {
			st.Max = p.MaxPrice
		}
		sum += p.AvgPrice
	}
	st.Avg = sum / float64(len(points))
	return &st
}

// Normalize drops days without samples and orders the rest by day.
func Normalize(points []models.DailyPricePoint) []models.DailyPricePoint {
	out := make([]models.DailyPricePoint, 0, len(points))
	for _, p := range points {
		if p.Samples > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// Bucket groups offers into one point per UTC calendar day, mirroring the
// v_price_history view. Offers without a price or timestamp are skipped,
// and the result is ordered by day.
func Bucket(offers []models.Offer) []models.DailyPricePoint {
	type acc struct {
		n             int64
		min, max, sum float64
	}
	days := make(map[time.Time]*acc)

	for _, o := range offers {
		if !o.Price.Valid || o.ObservedAt == nil {
			continue
		}
		y, m, d := o.ObservedAt.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		price := o.Price.Decimal.InexactFloat64()

		a, ok := days[day]
		if !ok {
			days[day] = &acc{n: 1, min: price, max: price, sum: price}
			continue
		}
		a.n++
		a.sum += price
		if price < a.min {
			a.min = price
		}
		if price > a.max {
			a.max = price
		}
	}

	out := make([]models.DailyPricePoint, 0, len(days))
	for day, a := range days {
		out = append(out, models.DailyPricePoint{
			Day:      day,
			Samples:  a.n,
			MinPrice: a.min,
			AvgPrice: a.sum / float64(a.n),
			MaxPrice: a.max,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// Within keeps the points whose day falls inside the inclusive bounds.
// A nil bound leaves that side open.
func Within(points []models.DailyPricePoint, from, to *time.Time) []models.DailyPricePoint {
	out := make([]models.DailyPricePoint, 0, len(points))
	for _, p := range points {
		if from != nil && p.Day.Before(*from) {
			continue
		}
		if to != nil && p.Day.After(*to) {
			continue
		}
		out = append(out, p)
	}
	return out
}
