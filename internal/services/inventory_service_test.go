package services

import (
	"testing"

	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_AdjustClampsAtZero(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})
	lot := env.lot(t, alice.ID, bean.ID, 500)

	res, err := env.inventory.Adjust(alice.ID, lot.ID, -1000, "spilled")
	require.NoError(t, err)

	assert.True(t, res.Clamped)
	assert.Equal(t, 0.0, res.Lot.QuantityGrams)

	summary, err := env.beans.Get(alice.ID, bean.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalInventory)
}

func TestInventoryService_AdjustSequenceNeverNegative(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})
	lot := env.lot(t, alice.ID, bean.ID, 250)

	for _, delta := range []float64{-100, 300, -900, 50} {
		res, err := env.inventory.Adjust(alice.ID, lot.ID, delta, "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Lot.QuantityGrams, 0.0)
	}

	got, err := env.inventory.Get(alice.ID, lot.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.QuantityGrams)
}

func TestInventoryService_AdjustUnknownLot(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	_, err := env.inventory.Adjust(alice.ID, 999, 10, "")
	assert.ErrorIs(t, err, ErrLotNotFound)
}

func TestInventoryService_TotalMatchesSumOfLots(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})
	env.lot(t, alice.ID, bean.ID, 250)
	env.lot(t, alice.ID, bean.ID, 340)
	doomed := env.lot(t, alice.ID, bean.ID, 1000)
	require.NoError(t, env.inventory.Delete(alice.ID, doomed.ID))

	// tastings must not multiply the lot sum
	for i := 0; i < 3; i++ {
		_, err := env.tastings.Create(alice.ID, TastingInput{CoffeeBeanID: bean.ID, OverallRating: ptr(7)})
		require.NoError(t, err)
	}

	lots, err := env.inventory.ListByBean(alice.ID, bean.ID)
	require.NoError(t, err)
	summary, err := env.beans.Get(alice.ID, bean.ID)
	require.NoError(t, err)

	assert.Equal(t, analytics.TotalInventory(lots), summary.TotalInventory)
	assert.Equal(t, 590.0, summary.TotalInventory)
	assert.Equal(t, int64(3), summary.TastingCount)
}

func TestInventoryService_CreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})

	_, err := env.inventory.Create(alice.ID, LotInput{CoffeeBeanID: bean.ID, QuantityGrams: ptr(-5.0), ExpiryDate: "31/12/2025"})
	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 2)

	_, err = env.inventory.Create(alice.ID, LotInput{CoffeeBeanID: bean.ID + 100, QuantityGrams: ptr(5.0)})
	assert.ErrorIs(t, err, ErrBeanNotFound)
}

func TestInventoryService_Aggregates(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	ethiopia := env.bean(t, alice.ID, BeanInput{Name: "Kochere", Origin: "Ethiopia"})
	kenya := env.bean(t, alice.ID, BeanInput{Name: "Nyeri", Origin: "Kenya"})
	env.bean(t, alice.ID, BeanInput{Name: "Empty", Origin: "Peru"})

	env.lot(t, alice.ID, ethiopia.ID, 700)
	env.lot(t, alice.ID, ethiopia.ID, 300)
	_, err := env.inventory.Create(alice.ID, LotInput{CoffeeBeanID: kenya.ID, QuantityGrams: ptr(120.0), ExpiryDate: day(-2)})
	require.NoError(t, err)

	summary, err := env.inventory.Summary(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalBeans)
	assert.Equal(t, 3, summary.TotalLots)
	assert.Equal(t, 1120.0, summary.TotalQuantity)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, 1, summary.ExpiredCount)
	assert.Equal(t, 2, summary.UniqueOrigins)

	low, err := env.inventory.LowStock(alice.ID)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, kenya.ID, low[0].BeanID)

	origins, err := env.inventory.ByOrigin(alice.ID)
	require.NoError(t, err)
	require.Len(t, origins, 2)
	assert.Equal(t, "Ethiopia", origins[0].Origin)
	assert.Equal(t, 1000.0, origins[0].TotalQuantity)
	assert.Equal(t, "Kenya", origins[1].Origin)
	assert.Equal(t, 1, origins[1].LowStockCount)
}
