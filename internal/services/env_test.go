package services

import (
	"testing"
	"time"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/database"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db    *gorm.DB
	repos *repository.Repositories
	clock clock.Clock

	users     *UserService
	tokens    *TokenService
	beans     *BeanService
	inventory *InventoryService
	tastings  *TastingService
	schedule  *ScheduleService
	costs     *CostService
	brewLogs  *BrewingLogService
	freshness *FreshnessService
	dashboard *DashboardService
	export    *ExportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repos := repository.New(db)
	clk := clock.Fixed(testNow)

	return &testEnv{
		db:        db,
		repos:     repos,
		clock:     clk,
		users:     NewUserService(repos.Users),
		tokens:    NewTokenService(repos.Tokens, repos.Users, "test-secret", clk),
		beans:     NewBeanService(repos.Beans, repos.Costs, db, clk),
		inventory: NewInventoryService(repos.Inventory, repos.Beans, db, clk),
		tastings:  NewTastingService(repos.Tastings, repos.Beans, clk),
		schedule:  NewScheduleService(repos.Schedule, repos.Beans, db, clk),
		costs:     NewCostService(repos.Beans, repos.Costs, repos.BrewingLogs, db),
		brewLogs:  NewBrewingLogService(repos.Beans, repos.Costs, repos.BrewingLogs, db, clk),
		freshness: NewFreshnessService(repos.Beans, clk),
		dashboard: NewDashboardService(repos.Beans, repos.Schedule, clk),
		export:    NewExportService(repos, "test-signing-key-32-characters!!", clk),
	}
}

func (e *testEnv) user(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := e.users.GetOrCreate(name)
	require.NoError(t, err)
	return u
}

func (e *testEnv) bean(t *testing.T, userID uint, in BeanInput) *models.CoffeeBean {
	t.Helper()
	if in.Name == "" {
		in.Name = "House Blend"
	}
	b, err := e.beans.Create(userID, in)
	require.NoError(t, err)
	return b
}

func (e *testEnv) lot(t *testing.T, userID, beanID uint, grams float64) *models.InventoryLot {
	t.Helper()
	lot, err := e.inventory.Create(userID, LotInput{CoffeeBeanID: beanID, QuantityGrams: &grams})
	require.NoError(t, err)
	return lot
}

func (e *testEnv) reload(t *testing.T, userID, beanID uint) *models.CoffeeBean {
	t.Helper()
	b, err := e.repos.Beans.FindByID(userID, beanID)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format(models.DateLayout)
}

func ptr[T any](v T) *T {
	return &v
}
