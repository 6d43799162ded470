// Package analytics holds the read-time aggregations over beans, lots, cost
// entries and brew logs. Nothing here touches the database.
package analytics

import (
	"sort"
	"time"

	"github.com/h4ks-com/brewlog/internal/models"
)

// LowStockThresholdGrams is the stock level under which a bean is flagged.
const LowStockThresholdGrams = 500.0

const unknownOrigin = "Unknown"

// TotalInventory sums the quantity of every lot.
func TotalInventory(lots []models.InventoryLot) float64 {
	total := 0.0
	for _, lot := range lots {
		total += lot.QuantityGrams
	}
	return total
}

func IsLowStock(totalGrams float64) bool {
	return totalGrams < LowStockThresholdGrams
}

// AdjustQuantity applies a signed delta and floors the result at zero. The
// second return value reports whether the floor was hit.
func AdjustQuantity(current, delta float64) (float64, bool) {
	next := current + delta
	if next < 0 {
		return 0, true
	}
	return next, false
}

// BeanStock is the stock position of one bean.
type BeanStock struct {
	BeanID         uint    `json:"coffee_bean_id"`
	Name           string  `json:"coffee_bean_name"`
	Origin         string  `json:"origin"`
	RoastLevel     string  `json:"roast_level"`
	TotalInventory float64 `json:"total_inventory"`
	LotCount       int     `json:"lot_count"`
}

type OriginRollup struct {
	Origin        string  `json:"origin"`
	UniqueBeans   int     `json:"unique_beans"`
	TotalQuantity float64 `json:"total_quantity"`
	LowStockCount int     `json:"low_stock_count"`
}

// RollupByOrigin groups beans by origin. Beans with an empty origin fall
// under "Unknown". Groups are ordered by total quantity, largest first, then
// by origin name.
func RollupByOrigin(beans []BeanStock) []OriginRollup {
	index := make(map[string]int)
	seen := make(map[string]map[uint]bool)
	var out []OriginRollup

	for _, b := range beans {
		origin := b.Origin
		if origin == "" {
			origin = unknownOrigin
		}
		i, ok := index[origin]
		if !ok {
			i = len(out)
			index[origin] = i
			seen[origin] = make(map[uint]bool)
			out = append(out, OriginRollup{Origin: origin})
		}
		out[i].TotalQuantity += b.TotalInventory
		if seen[origin][b.BeanID] {
			continue
		}
		seen[origin][b.BeanID] = true
		out[i].UniqueBeans++
		if IsLowStock(b.TotalInventory) {
			out[i].LowStockCount++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].Origin < out[j].Origin
	})
	return out
}

// InventorySummary describes the whole stock of one user.
type InventorySummary struct {
	TotalBeans    int     `json:"total_beans"`
	TotalLots     int     `json:"total_lots"`
	TotalQuantity float64 `json:"total_quantity"`
	AvgQuantity   float64 `json:"avg_quantity"`
	LowStockCount int     `json:"low_stock_count"`
	ExpiredCount  int     `json:"expired_count"`
	UniqueOrigins int     `json:"unique_origins"`
}

// SummarizeInventory aggregates lots. avg_quantity is per lot, the low-stock
// count is per bean and expired_count counts lots whose expiry date is before
// today. Only non-empty origins are counted.
func SummarizeInventory(stock []BeanStock, lots []models.InventoryLot, today time.Time) InventorySummary {
	var s InventorySummary
	origins := make(map[string]bool)
	for _, b := range stock {
		if b.LotCount == 0 {
			continue
		}
		s.TotalBeans++
		if IsLowStock(b.TotalInventory) {
			s.LowStockCount++
		}
		if b.Origin != "" {
			origins[b.Origin] = true
		}
	}
	s.UniqueOrigins = len(origins)

	for _, lot := range lots {
		s.TotalLots++
		s.TotalQuantity += lot.QuantityGrams
		if exp := models.TimeOf(lot.ExpiryDate); exp != nil && exp.Before(today) {
			s.ExpiredCount++
		}
	}
	if s.TotalLots > 0 {
		s.AvgQuantity = round2(s.TotalQuantity / float64(s.TotalLots))
	}
	return s
}

// LowStock returns the beans under the threshold, smallest stock first.
// Beans without any lot are not reported.
func LowStock(stock []BeanStock) []BeanStock {
	out := make([]BeanStock, 0)
	for _, b := range stock {
		if b.LotCount > 0 && IsLowStock(b.TotalInventory) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalInventory < out[j].TotalInventory
	})
	return out
}
