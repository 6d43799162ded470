package database

import (
	"fmt"
	"strings"

	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the record store. An empty URL or ":memory:" gives an
// in-memory SQLite database, "sqlite:<path>" a file-backed one and anything
// else is handed to the Postgres driver.
func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	memory := databaseURL == "" || databaseURL == ":memory:"
	switch {
	case memory:
		db, err = gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), config)
	case strings.HasPrefix(databaseURL, "sqlite:"):
		dbPath := strings.TrimPrefix(databaseURL, "sqlite:")
		dbPath = dbPath + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	default:
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if memory {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	logger.Info("running database migrations", zap.String("dialect", db.Dialector.Name()))

	err := db.AutoMigrate(
		&models.User{},
		&models.APIToken{},
		&models.CoffeeBean{},
		&models.InventoryLot{},
		&models.TastingNote{},
		&models.BrewingScheduleEntry{},
		&models.CostEntry{},
		&models.BrewingLogEntry{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migrations completed")
	return nil
}
