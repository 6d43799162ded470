package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/shopspring/decimal"
)

// ReferenceCupPrice is the price of a baseline commodity cup, in the bean's
// own currency.
var ReferenceCupPrice = decimal.RequireFromString("0.50")

const DaysPerMonth = 30

var hundred = decimal.NewFromInt(100)

func CostPerCup(totalCost decimal.Decimal, cups int) decimal.Decimal {
	if cups <= 0 {
		return decimal.Zero
	}
	return totalCost.Div(decimal.NewFromInt(int64(cups)))
}

func MonthlyCostAtOneCupPerDay(costPerCup decimal.Decimal) decimal.Decimal {
	return costPerCup.Mul(decimal.NewFromInt(DaysPerMonth))
}

// PremiumOverStandardCup expresses costPerCup as a percentage of
// ReferenceCupPrice, rounded to two decimals.
func PremiumOverStandardCup(costPerCup decimal.Decimal) decimal.Decimal {
	return costPerCup.Div(ReferenceCupPrice).Mul(hundred).Round(2)
}

// PricePerGram is zero unless both the price and a positive weight are known.
func PricePerGram(price decimal.NullDecimal, grams *float64) decimal.Decimal {
	if !price.Valid || grams == nil || *grams <= 0 {
		return decimal.Zero
	}
	return price.Decimal.Div(decimal.NewFromFloat(*grams))
}

func CostPerGram(amount decimal.Decimal, grams float64) decimal.Decimal {
	if grams <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromFloat(grams))
}

// SumAmounts totals the amounts of a set of cost entries.
func SumAmounts(entries []models.CostEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

func SumCups(logs []models.BrewingLogEntry) int {
	total := 0
	for _, l := range logs {
		total += l.CupsMade
	}
	return total
}

// BeanCost is the cost position of one bean, in the bean's currency.
type BeanCost struct {
	BeanID     uint
	Name       string
	Origin     string
	Currency   models.Currency
	TotalCost  decimal.Decimal
	CupsBrewed int
	CostPerCup decimal.Decimal
}

type CostAnalysisRow struct {
	BeanCost
	CalculatedCostPerCup      decimal.Decimal
	MonthlyCostAtOneCupPerDay decimal.Decimal
}

type ROIRow struct {
	BeanCost
	CostPercentageOfTotal  decimal.Decimal
	PremiumOverStandardCup decimal.Decimal
}

// CostAnalysis reports beans that have any recorded spend, most expensive cup
// first.
func CostAnalysis(beans []BeanCost) []CostAnalysisRow {
	rows := make([]CostAnalysisRow, 0, len(beans))
	for _, b := range withSpend(beans) {
		cpc := CostPerCup(b.TotalCost, b.CupsBrewed)
		rows = append(rows, CostAnalysisRow{
			BeanCost:                  b,
			CalculatedCostPerCup:      cpc,
			MonthlyCostAtOneCupPerDay: MonthlyCostAtOneCupPerDay(cpc),
		})
	}
	return rows
}

func ROI(beans []BeanCost) []ROIRow {
	rows := make([]ROIRow, 0, len(beans))
	for _, b := range withSpend(beans) {
		cpc := CostPerCup(b.TotalCost, b.CupsBrewed)
		rows = append(rows, ROIRow{
			BeanCost:               b,
			CostPercentageOfTotal:  cpc.Mul(hundred).Round(2),
			PremiumOverStandardCup: PremiumOverStandardCup(cpc),
		})
	}
	return rows
}

func withSpend(beans []BeanCost) []BeanCost {
	out := make([]BeanCost, 0, len(beans))
	for _, b := range beans {
		if b.TotalCost.IsPositive() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return CostPerCup(out[i].TotalCost, out[i].CupsBrewed).GreaterThan(CostPerCup(out[j].TotalCost, out[j].CupsBrewed))
	})
	return out
}

// TotalsByCurrency sums spend per currency code. Amounts in different
// currencies are never added together.
func TotalsByCurrency(beans []BeanCost) map[models.Currency]decimal.Decimal {
	totals := make(map[models.Currency]decimal.Decimal)
	for _, b := range beans {
		if b.TotalCost.IsZero() {
			continue
		}
		totals[b.Currency] = totals[b.Currency].Add(b.TotalCost)
	}
	return totals
}

// SpendEntry is a cost entry joined with its bean.
type SpendEntry struct {
	BeanID        uint
	BeanName      string
	Origin        string
	Currency      models.Currency
	PurchaseDate  time.Time
	Amount        decimal.Decimal
	QuantityGrams float64
	CostPerGram   decimal.Decimal
}

type MonthlyBeanSpend struct {
	BeanID         uint
	BeanName       string
	Origin         string
	Currency       models.Currency
	TotalSpent     decimal.Decimal
	TotalGrams     float64
	AvgCostPerGram decimal.Decimal
	Purchases      int
}

type MonthlySpendingReport struct {
	Year             int
	Month            time.Month
	Beans            []MonthlyBeanSpend
	TotalsByCurrency map[models.Currency]decimal.Decimal
}

// MonthlySpending groups the entries purchased in the given calendar month by
// bean. Beans are ordered by amount spent, highest first.
func MonthlySpending(entries []SpendEntry, year int, month time.Month) MonthlySpendingReport {
	report := MonthlySpendingReport{
		Year:             year,
		Month:            month,
		Beans:            []MonthlyBeanSpend{},
		TotalsByCurrency: make(map[models.Currency]decimal.Decimal),
	}

	index := make(map[uint]int)
	perGramSums := make(map[uint]decimal.Decimal)
	for _, e := range entries {
		y, m, _ := e.PurchaseDate.Date()
		if y != year || m != month {
			continue
		}
		i, ok := index[e.BeanID]
		if !ok {
			i = len(report.Beans)
			index[e.BeanID] = i
			report.Beans = append(report.Beans, MonthlyBeanSpend{
				BeanID:   e.BeanID,
				BeanName: e.BeanName,
				Origin:   e.Origin,
				Currency: e.Currency,
			})
		}
		row := &report.Beans[i]
		row.TotalSpent = row.TotalSpent.Add(e.Amount)
		row.TotalGrams += e.QuantityGrams
		row.Purchases++
		perGramSums[e.BeanID] = perGramSums[e.BeanID].Add(e.CostPerGram)
		report.TotalsByCurrency[e.Currency] = report.TotalsByCurrency[e.Currency].Add(e.Amount)
	}

	for i := range report.Beans {
		row := &report.Beans[i]
		row.AvgCostPerGram = perGramSums[row.BeanID].Div(decimal.NewFromInt(int64(row.Purchases)))
	}

	sort.SliceStable(report.Beans, func(i, j int) bool {
		return report.Beans[i].TotalSpent.GreaterThan(report.Beans[j].TotalSpent)
	})
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
