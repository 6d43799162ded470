package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 {
	return &v
}

func TestRollup_Empty(t *testing.T) {
	d := Rollup(nil)

	assert.Equal(t, 0, d.TotalBeans)
	assert.Equal(t, 0.0, d.AverageRating)
	assert.Nil(t, d.MostExpensive)
	assert.Nil(t, d.HighestRated)
	assert.Empty(t, d.TopOrigins)
}

func TestRollup_Counts(t *testing.T) {
	beans := []BeanOverview{
		{BeanID: 1, Origin: "Ethiopia", TotalInventory: 800, TastingCount: 2, AvgRating: rating(8)},
		{BeanID: 2, Origin: "Kenya", TotalInventory: 200, TastingCount: 1, AvgRating: rating(7)},
		{BeanID: 3, Origin: "", TotalInventory: 0},
		{BeanID: 4, Origin: "Ethiopia", TotalInventory: 1000.5, TastingCount: 3, AvgRating: rating(6)},
	}

	d := Rollup(beans)

	assert.Equal(t, 4, d.TotalBeans)
	assert.Equal(t, 2000.5, d.TotalInventory)
	assert.Equal(t, 6, d.TotalTastings)
	// unrated bean still counts in the denominator
	assert.Equal(t, 5.25, d.AverageRating)
	assert.Equal(t, 2, d.UniqueOrigins)
	assert.Equal(t, 2, d.LowStockCount)
	require.Len(t, d.LowStockItems, 2)
	assert.Equal(t, []OriginCount{{"Ethiopia", 2}, {"Kenya", 1}}, d.TopOrigins)
}

func TestRollup_TiesGoToFirstInListing(t *testing.T) {
	beans := []BeanOverview{
		{BeanID: 10, PricePerGram: dec("0.08"), AvgRating: rating(9)},
		{BeanID: 11, PricePerGram: dec("0.12"), AvgRating: rating(9)},
		{BeanID: 12, PricePerGram: dec("0.12"), AvgRating: rating(8.5)},
	}

	d := Rollup(beans)

	require.NotNil(t, d.MostExpensive)
	assert.Equal(t, uint(11), d.MostExpensive.BeanID)
	require.NotNil(t, d.HighestRated)
	assert.Equal(t, uint(10), d.HighestRated.BeanID)
}

func TestRollup_HighestRatedSkipsUnrated(t *testing.T) {
	d := Rollup([]BeanOverview{{BeanID: 1}, {BeanID: 2, AvgRating: rating(3)}})

	require.NotNil(t, d.HighestRated)
	assert.Equal(t, uint(2), d.HighestRated.BeanID)
}

func TestRollup_Limits(t *testing.T) {
	origins := []string{"A", "B", "C", "D", "E", "F", "G"}
	var beans []BeanOverview
	for i, o := range origins {
		beans = append(beans, BeanOverview{BeanID: uint(i + 1), Origin: o, TotalInventory: 1000})
	}
	beans = append(beans, BeanOverview{BeanID: 8, Origin: "G", TotalInventory: 1000})

	d := Rollup(beans)

	assert.Len(t, d.RecentBeans, RecentBeansLimit)
	assert.Equal(t, uint(1), d.RecentBeans[0].BeanID)
	require.Len(t, d.TopOrigins, TopOriginsLimit)
	assert.Equal(t, OriginCount{"G", 2}, d.TopOrigins[0])
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{d.TopOrigins[1].Origin, d.TopOrigins[2].Origin, d.TopOrigins[3].Origin, d.TopOrigins[4].Origin})
}
