package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one database handle.
type Repositories struct {
	Users       *UserRepository
	Tokens      *TokenRepository
	Beans       *BeanRepository
	Inventory   *InventoryRepository
	Tastings    *TastingRepository
	Schedule    *ScheduleRepository
	Costs       *CostRepository
	BrewingLogs *BrewingLogRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Tokens:      NewTokenRepository(db),
		Beans:       NewBeanRepository(db),
		Inventory:   NewInventoryRepository(db),
		Tastings:    NewTastingRepository(db),
		Schedule:    NewScheduleRepository(db),
		Costs:       NewCostRepository(db),
		BrewingLogs: NewBrewingLogRepository(db),
	}
}
