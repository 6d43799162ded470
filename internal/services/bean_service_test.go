package services

import (
	"testing"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeanService_CreateDerivesPricePerGram(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	bean := env.bean(t, alice.ID, BeanInput{
		Name:        "  Yirgacheffe ",
		Origin:      "Ethiopia",
		RoastLevel:  "Light",
		BuyingPrice: ptr(18.0),
		AmountGrams: ptr(250.0),
		RoastDate:   day(-4),
	})

	assert.Equal(t, "Yirgacheffe", bean.Name)
	assert.Equal(t, models.CurrencyUSD, bean.Currency)
	assert.True(t, bean.PricePerGram.Equal(decimal.RequireFromString("0.072")), bean.PricePerGram.String())
	assert.True(t, bean.TotalCost.IsZero())
	assert.Equal(t, day(-4), models.FormatDate(bean.RoastDate))
}

func TestBeanService_CreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	_, err := env.beans.Create(alice.ID, BeanInput{RoastLevel: "Blonde", Currency: "EUR", BestByDate: "soon", BuyingPrice: ptr(-1.0)})
	verr, ok := IsValidation(err)
	require.True(t, ok)

	var fields []string
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "roast_level", "currency", "best_by_date", "buying_price"}, fields)
}

func TestBeanService_GetAggregates(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})
	env.lot(t, alice.ID, bean.ID, 200)
	env.lot(t, alice.ID, bean.ID, 150)

	for _, r := range []int{7, 8} {
		_, err := env.tastings.Create(alice.ID, TastingInput{CoffeeBeanID: bean.ID, OverallRating: ptr(r)})
		require.NoError(t, err)
	}

	summary, err := env.beans.Get(alice.ID, bean.ID)
	require.NoError(t, err)
	assert.Equal(t, 350.0, summary.TotalInventory)
	assert.Equal(t, int64(2), summary.LotCount)
	assert.Equal(t, int64(2), summary.TastingCount)
	require.NotNil(t, summary.AvgRating)
	assert.Equal(t, 7.5, *summary.AvgRating)

	bob := env.user(t, "bob")
	_, err = env.beans.Get(bob.ID, bean.ID)
	assert.ErrorIs(t, err, ErrBeanNotFound)
}

func TestBeanService_ListFilters(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	env.bean(t, alice.ID, BeanInput{Name: "A", Origin: "Costa Rica", RoastLevel: "Light"})
	env.bean(t, alice.ID, BeanInput{Name: "B", Origin: "Rica Valley", RoastLevel: "Dark"})
	env.bean(t, alice.ID, BeanInput{Name: "C", Origin: "Brazil", RoastLevel: "Light"})

	all, err := env.beans.List(alice.ID, repository.BeanFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Name)

	light, err := env.beans.List(alice.ID, repository.BeanFilter{RoastLevel: "Light"})
	require.NoError(t, err)
	assert.Len(t, light, 2)

	rica, err := env.beans.List(alice.ID, repository.BeanFilter{Origin: "rica"})
	require.NoError(t, err)
	assert.Len(t, rica, 2)

	_, err = env.beans.List(alice.ID, repository.BeanFilter{RoastLevel: "Charcoal"})
	_, ok := IsValidation(err)
	assert.True(t, ok)
}

func TestBeanService_UpdateCurrency(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{Name: "Kona"})

	updated, err := env.beans.Update(alice.ID, bean.ID, BeanInput{Name: "Kona Extra Fancy", Currency: "HKD", BuyingPrice: ptr(300.0), AmountGrams: ptr(200.0)})
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyHKD, updated.Currency)
	assert.True(t, updated.PricePerGram.Equal(decimal.NewFromFloat(1.5)))
}

func TestBeanService_UpdateRefusesCurrencyChangeWithCostEntries(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{Name: "Kona", Currency: "JPY"})

	_, err := env.costs.Create(alice.ID, CostInput{CoffeeBeanID: bean.ID, PurchaseDate: day(0), Amount: ptr(3000.0), QuantityGrams: 200})
	require.NoError(t, err)

	_, err = env.beans.Update(alice.ID, bean.ID, BeanInput{Name: "Kona", Currency: "USD"})
	verr, ok := IsValidation(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "currency", verr.Fields[0].Field)

	entries, err := env.costs.List(alice.ID, CostListFilter{BeanID: bean.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.CurrencyJPY, entries[0].Currency)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(3000)))

	updated, err := env.beans.Update(alice.ID, bean.ID, BeanInput{Name: "Kona Extra Fancy", Currency: "JPY"})
	require.NoError(t, err)
	assert.Equal(t, "Kona Extra Fancy", updated.Name)
	assert.True(t, updated.TotalCost.Equal(decimal.NewFromInt(3000)), "update must not reset derived counters")
}

func TestBeanService_RejectsFutureRoastDate(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	_, err := env.beans.Create(alice.ID, BeanInput{Name: "Preorder", RoastDate: day(1)})
	verr, ok := IsValidation(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "roast_date", verr.Fields[0].Field)

	bean := env.bean(t, alice.ID, BeanInput{Name: "Roasted today", RoastDate: day(0)})
	_, err = env.beans.Update(alice.ID, bean.ID, BeanInput{Name: "Roasted today", RoastDate: day(5)})
	_, ok = IsValidation(err)
	assert.True(t, ok)
}

func TestBeanService_DeleteCascades(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})
	keep := env.bean(t, alice.ID, BeanInput{Name: "Keeper"})

	env.lot(t, alice.ID, bean.ID, 100)
	env.lot(t, alice.ID, keep.ID, 100)
	_, err := env.tastings.Create(alice.ID, TastingInput{CoffeeBeanID: bean.ID, OverallRating: ptr(5)})
	require.NoError(t, err)
	_, err = env.schedule.Create(alice.ID, ScheduleInput{CoffeeBeanID: bean.ID, ScheduledDate: day(1)})
	require.NoError(t, err)
	_, err = env.costs.Create(alice.ID, CostInput{CoffeeBeanID: bean.ID, PurchaseDate: day(0), Amount: ptr(10.0), QuantityGrams: 100})
	require.NoError(t, err)
	_, err = env.brewLogs.Create(alice.ID, BrewLogInput{CoffeeBeanID: bean.ID, GramsUsed: 15})
	require.NoError(t, err)

	require.NoError(t, env.beans.Delete(alice.ID, bean.ID))
	assert.ErrorIs(t, env.beans.Delete(alice.ID, bean.ID), ErrBeanNotFound)

	for _, model := range []interface{}{
		&models.InventoryLot{},
		&models.TastingNote{},
		&models.BrewingScheduleEntry{},
		&models.CostEntry{},
		&models.BrewingLogEntry{},
	} {
		var count int64
		require.NoError(t, env.db.Model(model).Where("coffee_bean_id = ?", bean.ID).Count(&count).Error)
		assert.Zero(t, count, "%T rows left behind", model)
	}

	lots, err := env.inventory.ListByBean(alice.ID, keep.ID)
	require.NoError(t, err)
	assert.Len(t, lots, 1)
}
