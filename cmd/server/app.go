package main

import (
	"fmt"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/config"
	"github.com/h4ks-com/brewlog/internal/database"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/h4ks-com/brewlog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds everything the commands share once configuration is loaded.
type app struct {
	cfg   *config.Config
	db    *gorm.DB
	clock clock.Clock
	repos *repository.Repositories

	users     *services.UserService
	tokens    *services.TokenService
	beans     *services.BeanService
	inventory *services.InventoryService
	tastings  *services.TastingService
	schedule  *services.ScheduleService
	costs     *services.CostService
	brewLogs  *services.BrewingLogService
	freshness *services.FreshnessService
	dashboard *services.DashboardService
	export    *services.ExportService
}

// bootstrap loads configuration, sets up logging and opens the migrated
// database.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialise logger: %w", err)
	}

	clk, err := clock.NewSystem(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.JWT.Secret == "" {
		logger.Warn("JWT_SECRET is empty, issued tokens are not secure")
	}
	if cfg.ExportSigningKey == "" {
		logger.Warn("EXPORT_SIGNING_KEY is empty, journal exports are not secure")
	}

	return newApp(cfg, db, clk), nil
}

func newApp(cfg *config.Config, db *gorm.DB, clk clock.Clock) *app {
	repos := repository.New(db)
	logger.Debug("wiring services", zap.String("timezone", cfg.Timezone))

	return &app{
		cfg:       cfg,
		db:        db,
		clock:     clk,
		repos:     repos,
		users:     services.NewUserService(repos.Users),
		tokens:    services.NewTokenService(repos.Tokens, repos.Users, cfg.JWT.Secret, clk),
		beans:     services.NewBeanService(repos.Beans, repos.Costs, db, clk),
		inventory: services.NewInventoryService(repos.Inventory, repos.Beans, db, clk),
		tastings:  services.NewTastingService(repos.Tastings, repos.Beans, clk),
		schedule:  services.NewScheduleService(repos.Schedule, repos.Beans, db, clk),
		costs:     services.NewCostService(repos.Beans, repos.Costs, repos.BrewingLogs, db),
		brewLogs:  services.NewBrewingLogService(repos.Beans, repos.Costs, repos.BrewingLogs, db, clk),
		freshness: services.NewFreshnessService(repos.Beans, clk),
		dashboard: services.NewDashboardService(repos.Beans, repos.Schedule, clk),
		export:    services.NewExportService(repos, cfg.ExportSigningKey, clk),
	}
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Sync()
}
