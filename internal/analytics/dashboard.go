package analytics

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/shopspring/decimal"
)

const (
	RecentBeansLimit   = 6
	TopOriginsLimit    = 5
	LowStockItemsLimit = 5
)

// BeanOverview is one row of the bean listing with its aggregates.
type BeanOverview struct {
	BeanID         uint
	Name           string
	Origin         string
	RoastLevel     models.RoastLevel
	Currency       models.Currency
	PricePerGram   decimal.Decimal
	TotalInventory float64
	TastingCount   int
	AvgRating      *float64
}

type OriginCount struct {
	Origin string `json:"origin"`
	Count  int    `json:"count"`
}

type Dashboard struct {
	TotalBeans     int
	TotalInventory float64
	TotalTastings  int
	AverageRating  float64
	UniqueOrigins  int
	LowStockCount  int
	MostExpensive  *BeanOverview
	HighestRated   *BeanOverview
	TopOrigins     []OriginCount
	RecentBeans    []BeanOverview
	LowStockItems  []BeanOverview
}

// Rollup composes the dashboard from the bean listing. The listing order is
// significant: ties for most expensive and highest rated go to the bean seen
// first, and recent beans are the head of the list.
func Rollup(beans []BeanOverview) Dashboard {
	d := Dashboard{
		TotalBeans:    len(beans),
		TopOrigins:    []OriginCount{},
		RecentBeans:   []BeanOverview{},
		LowStockItems: []BeanOverview{},
	}

	ratingSum := 0.0
	originIndex := make(map[string]int)
	for i := range beans {
		b := &beans[i]
		d.TotalInventory += b.TotalInventory
		d.TotalTastings += b.TastingCount

		rating := 0.0
		if b.AvgRating != nil {
			rating = *b.AvgRating
		}
		ratingSum += rating

		if IsLowStock(b.TotalInventory) {
			d.LowStockCount++
			if len(d.LowStockItems) < LowStockItemsLimit {
				d.LowStockItems = append(d.LowStockItems, *b)
			}
		}

		if b.Origin != "" {
			if j, ok := originIndex[b.Origin]; ok {
				d.TopOrigins[j].Count++
			} else {
				originIndex[b.Origin] = len(d.TopOrigins)
				d.TopOrigins = append(d.TopOrigins, OriginCount{Origin: b.Origin, Count: 1})
			}
		}

		if d.MostExpensive == nil || b.PricePerGram.GreaterThan(d.MostExpensive.PricePerGram) {
			d.MostExpensive = b
		}
		if b.AvgRating != nil && (d.HighestRated == nil || *b.AvgRating > *d.HighestRated.AvgRating) {
			d.HighestRated = b
		}

		if len(d.RecentBeans) < RecentBeansLimit {
			d.RecentBeans = append(d.RecentBeans, *b)
		}
	}

	d.UniqueOrigins = len(d.TopOrigins)
	if len(beans) > 0 {
		d.AverageRating = round2(ratingSum / float64(len(beans)))
	}
	d.TotalInventory = round2(d.TotalInventory)

	d.TopOrigins = topOrigins(d.TopOrigins, TopOriginsLimit)
	return d
}

// topOrigins keeps the n largest groups. Insertion sort keeps equal counts
// in first-seen order.
func topOrigins(origins []OriginCount, n int) []OriginCount {
	for i := 1; i < len(origins); i++ {
		for j := i; j > 0 && origins[j].Count > origins[j-1].Count; j-- {
			origins[j], origins[j-1] = origins[j-1], origins[j]
		}
	}
	if len(origins) > n {
		origins = origins[:n]
	}
	return origins
}
