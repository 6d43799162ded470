package analytics

import (
	"testing"
	"time"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostPerCup(t *testing.T) {
	assert.True(t, CostPerCup(dec("9.00"), 3).Equal(dec("3")))
	assert.True(t, CostPerCup(dec("9.00"), 0).IsZero())
	assert.True(t, CostPerCup(decimal.Zero, 0).IsZero())
}

func TestMonthlyCostAtOneCupPerDay(t *testing.T) {
	assert.True(t, MonthlyCostAtOneCupPerDay(dec("1.25")).Equal(dec("37.5")))
}

func TestPremiumOverStandardCup(t *testing.T) {
	assert.Equal(t, "600", PremiumOverStandardCup(dec("3")).String())
	assert.Equal(t, "66.67", PremiumOverStandardCup(dec("0.33333")).String())
	assert.True(t, PremiumOverStandardCup(decimal.Zero).IsZero())
}

func TestPricePerGram(t *testing.T) {
	grams := 250.0
	zero := 0.0
	price := decimal.NewNullDecimal(dec("18.50"))

	assert.True(t, PricePerGram(price, &grams).Equal(dec("0.074")))
	assert.True(t, PricePerGram(price, nil).IsZero())
	assert.True(t, PricePerGram(price, &zero).IsZero())
	assert.True(t, PricePerGram(decimal.NullDecimal{}, &grams).IsZero())
}

func TestCostPerGram_EachEntryIndependent(t *testing.T) {
	assert.True(t, CostPerGram(dec("10.00"), 100).Equal(dec("0.1")))
	assert.True(t, CostPerGram(dec("5.00"), 50).Equal(dec("0.1")))
	assert.True(t, CostPerGram(dec("5.00"), 0).IsZero())
}

func TestSums(t *testing.T) {
	entries := []models.CostEntry{{Amount: dec("10.00")}, {Amount: dec("5.00")}}
	assert.True(t, SumAmounts(entries).Equal(dec("15")))

	logs := []models.BrewingLogEntry{{CupsMade: 1}, {CupsMade: 2}}
	assert.Equal(t, 3, SumCups(logs))
}

func TestCostAnalysis_OnlyBeansWithSpend(t *testing.T) {
	beans := []BeanCost{
		{BeanID: 1, TotalCost: dec("12"), CupsBrewed: 12},
		{BeanID: 2, TotalCost: decimal.Zero, CupsBrewed: 3},
		{BeanID: 3, TotalCost: dec("20"), CupsBrewed: 5},
		{BeanID: 4, TotalCost: dec("8"), CupsBrewed: 0},
	}

	rows := CostAnalysis(beans)

	require.Len(t, rows, 3)
	assert.Equal(t, uint(3), rows[0].BeanID)
	assert.True(t, rows[0].CalculatedCostPerCup.Equal(dec("4")))
	assert.True(t, rows[0].MonthlyCostAtOneCupPerDay.Equal(dec("120")))
	assert.Equal(t, uint(1), rows[1].BeanID)
	assert.Equal(t, uint(4), rows[2].BeanID)
	assert.True(t, rows[2].CalculatedCostPerCup.IsZero())
}

func TestROI(t *testing.T) {
	rows := ROI([]BeanCost{{BeanID: 1, TotalCost: dec("9"), CupsBrewed: 3}})

	require.Len(t, rows, 1)
	assert.Equal(t, "600", rows[0].PremiumOverStandardCup.String())
	assert.Equal(t, "300", rows[0].CostPercentageOfTotal.String())
}

func TestTotalsByCurrency_NeverMixes(t *testing.T) {
	totals := TotalsByCurrency([]BeanCost{
		{Currency: models.CurrencyUSD, TotalCost: dec("10")},
		{Currency: models.CurrencyJPY, TotalCost: dec("1500")},
		{Currency: models.CurrencyUSD, TotalCost: dec("2.5")},
		{Currency: models.CurrencyHKD, TotalCost: decimal.Zero},
	})

	require.Len(t, totals, 2)
	assert.True(t, totals[models.CurrencyUSD].Equal(dec("12.5")))
	assert.True(t, totals[models.CurrencyJPY].Equal(dec("1500")))
}

func TestMonthlySpending_OnlyEntriesInsideMonth(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	entries := []SpendEntry{
		{BeanID: 1, BeanName: "Kochere", Currency: models.CurrencyUSD, PurchaseDate: day(2025, 3, 1), Amount: dec("10"), QuantityGrams: 100, CostPerGram: dec("0.1")},
		{BeanID: 1, BeanName: "Kochere", Currency: models.CurrencyUSD, PurchaseDate: day(2025, 3, 31), Amount: dec("6"), QuantityGrams: 30, CostPerGram: dec("0.2")},
		{BeanID: 2, BeanName: "Huila", Currency: models.CurrencyUSD, PurchaseDate: day(2025, 3, 15), Amount: dec("20"), QuantityGrams: 250, CostPerGram: dec("0.08")},
		{BeanID: 1, BeanName: "Kochere", Currency: models.CurrencyUSD, PurchaseDate: day(2025, 2, 28), Amount: dec("99"), QuantityGrams: 1, CostPerGram: dec("99")},
		{BeanID: 3, BeanName: "Gesha", Currency: models.CurrencyJPY, PurchaseDate: day(2025, 4, 1), Amount: dec("3000"), QuantityGrams: 100, CostPerGram: dec("30")},
		{BeanID: 3, BeanName: "Gesha", Currency: models.CurrencyJPY, PurchaseDate: day(2024, 3, 10), Amount: dec("3000"), QuantityGrams: 100, CostPerGram: dec("30")},
	}

	report := MonthlySpending(entries, 2025, time.March)

	require.Len(t, report.Beans, 2)
	assert.Equal(t, uint(2), report.Beans[0].BeanID)
	assert.True(t, report.Beans[0].TotalSpent.Equal(dec("20")))

	kochere := report.Beans[1]
	assert.True(t, kochere.TotalSpent.Equal(dec("16")))
	assert.Equal(t, 130.0, kochere.TotalGrams)
	assert.Equal(t, 2, kochere.Purchases)
	assert.True(t, kochere.AvgCostPerGram.Equal(dec("0.15")))

	require.Len(t, report.TotalsByCurrency, 1)
	assert.True(t, report.TotalsByCurrency[models.CurrencyUSD].Equal(dec("36")))
}

func TestMonthlySpending_EmptyMonth(t *testing.T) {
	report := MonthlySpending(nil, 2025, time.January)

	assert.NotNil(t, report.Beans)
	assert.Empty(t, report.Beans)
	assert.Empty(t, report.TotalsByCurrency)
}
