package series

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pricescope/internal/domain/models"
)

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func offerAt(ts time.Time, price string) models.Offer {
	o := models.Offer{ID: ts.String() + price, ObservedAt: &ts}
	if price != "" {
		o.Price = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	return o
}

func TestStats_MeanOfDailyMeans(t *testing.T) {
	t.Parallel()

	points := []models.DailyPricePoint{
		{Day: day(1), Samples: 10, MinPrice: 10, AvgPrice: 20, MaxPrice: 30},
		{Day: day(2), Samples: 1, MinPrice: 5, AvgPrice: 15, MaxPrice: 25},
	}

	st := Stats(points)
	require.NotNil(t, st)
	assert.Equal(t, 5.0, st.Min)
	assert.Equal(t, 30.0, st.Max)
	assert.Equal(t, 17.5, st.Avg, "sample counts must not weigh the mean")
}

func TestStats_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Stats(nil))
	assert.Nil(t, Stats([]models.DailyPricePoint{}))
}

func TestBucket_SameDayOffers(t *testing.T) {
	t.Parallel()

	offers := []models.Offer{
		offerAt(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), "10"),
		offerAt(time.Date(2025, 5, 1, 21, 15, 0, 0, time.UTC), "20"),
	}

	got := Bucket(offers)
	require.Len(t, got, 1)
	assert.Equal(t, day(1), got[0].Day)
	assert.Equal(t, int64(2), got[0].Samples)
	assert.Equal(t, 10.0, got[0].MinPrice)
	assert.Equal(t, 15.0, got[0].AvgPrice)
	assert.Equal(t, 20.0, got[0].MaxPrice)
}

func TestBucket_UTCDaysAndGaps(t *testing.T) {
	t.Parallel()

	brt := time.FixedZone("BRT", -3*60*60)
	offers := []models.Offer{
		// 22:00 BRT on the 1st is 01:00 UTC on the 2nd.
		offerAt(time.Date(2025, 5, 1, 22, 0, 0, 0, brt), "7"),
		offerAt(time.Date(2025, 5, 5, 12, 0, 0, 0, time.UTC), "3"),
		offerAt(time.Date(2025, 5, 5, 13, 0, 0, 0, time.UTC), "9"),
		offerAt(time.Date(2025, 5, 5, 14, 0, 0, 0, time.UTC), ""),
		{ID: "no-ts", Price: decimal.NewNullDecimal(decimal.NewFromInt(1))},
	}

	got := Bucket(offers)
	require.Len(t, got, 2, "missing days are not zero-filled")
	assert.Equal(t, day(2), got[0].Day)
	assert.Equal(t, int64(1), got[0].Samples)
	assert.Equal(t, day(5), got[1].Day)
	assert.Equal(t, int64(2), got[1].Samples)

	for _, p := range got {
		assert.LessOrEqual(t, p.MinPrice, p.AvgPrice)
		assert.LessOrEqual(t, p.AvgPrice, p.MaxPrice)
	}
}

func TestBucket_NoOffers(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Bucket(nil))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := Normalize([]models.DailyPricePoint{
		{Day: day(3), Samples: 1, MinPrice: 1, AvgPrice: 1, MaxPrice: 1},
		{Day: day(2), Samples: 0},
		{Day: day(1), Samples: 2, MinPrice: 1, AvgPrice: 2, MaxPrice: 3},
	})
	require.Len(t, got, 2)
	assert.Equal(t, day(1), got[0].Day)
	assert.Equal(t, day(3), got[1].Day)
}

func TestWithin(t *testing.T) {
	t.Parallel()

	points := []models.DailyPricePoint{
		{Day: day(1), Samples: 1},
		{Day: day(2), Samples: 1},
		{Day: day(3), Samples: 1},
	}
	from, to := day(2), day(3)

	assert.Len(t, Within(points, nil, nil), 3)
	assert.Len(t, Within(points, &from, nil), 2)
	assert.Len(t, Within(points, nil, &from), 2)
	got := Within(points, &from, &to)
	require.Len(t, got, 2)
	assert.Equal(t, day(2), got[0].Day)
}
