package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type postgresContainer struct {
	testcontainers.Container
	DSN string
}

func setupPostgres(ctx context.Context) (*postgresContainer, error) {
	natPort := nat.Port("5432/tcp")

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"POSTGRES_USER":     "brewlog",
			"POSTGRES_PASSWORD": "brewlog",
			"POSTGRES_DB":       "brewlog",
		},
		WaitingFor: wait.ForListeningPort(natPort).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var pg *postgresContainer
	if container != nil {
		pg = &postgresContainer{Container: container}
	}
	if err != nil {
		return pg, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return pg, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return pg, err
	}

	pg.DSN = fmt.Sprintf("host=%s port=%s user=brewlog password=brewlog dbname=brewlog sslmode=disable", host, mappedPort.Port())
	return pg, nil
}

func TestPostgres_MigrateAndRoundTripMoney(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pg, err := setupPostgres(ctx)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	db := connectWithRetry(t, pg.DSN)
	require.NoError(t, Migrate(db))

	user := models.User{Username: "alice"}
	require.NoError(t, db.Create(&user).Error)

	bean := models.CoffeeBean{
		UserID:       user.ID,
		Name:         "Kochere",
		Origin:       "Ethiopia",
		RoastLevel:   models.RoastLight,
		Currency:     models.CurrencyUSD,
		PricePerGram: decimal.RequireFromString("0.0725"),
		TotalCost:    decimal.RequireFromString("15.00"),
	}
	require.NoError(t, db.Create(&bean).Error)

	var loaded models.CoffeeBean
	require.NoError(t, db.First(&loaded, bean.ID).Error)
	assert.True(t, loaded.PricePerGram.Equal(decimal.RequireFromString("0.0725")))
	assert.True(t, loaded.TotalCost.Equal(decimal.NewFromInt(15)))
	assert.False(t, loaded.BuyingPrice.Valid)
}

func connectWithRetry(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	var lastErr error
	for i := 0; i < 10; i++ {
		db, err := Connect(dsn)
		if err == nil {
			sqlDB, err := db.DB()
			if err == nil && sqlDB.Ping() == nil {
				return db
			}
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("postgres never became ready: %v", lastErr)
	return nil
}
