package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BrewingLogFilter struct {
	BeanID    uint
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type BrewingLogRepository struct {
	db *gorm.DB
}

func NewBrewingLogRepository(db *gorm.DB) *BrewingLogRepository {
	return &BrewingLogRepository{db: db}
}

func (r *BrewingLogRepository) CreateInTx(tx *gorm.DB, entry *models.BrewingLogEntry) error {
	return tx.Omit(clause.Associations).Create(entry).Error
}

func (r *BrewingLogRepository) FindByIDInTx(tx *gorm.DB, userID, id uint) (*models.BrewingLogEntry, error) {
	var entry models.BrewingLogEntry
	err := tx.Scopes(ownedBy(userID)).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *BrewingLogRepository) ListByBeanInTx(tx *gorm.DB, beanID uint) ([]models.BrewingLogEntry, error) {
	var entries []models.BrewingLogEntry
	err := tx.Where("coffee_bean_id = ?", beanID).Find(&entries).Error
	return entries, err
}

func (r *BrewingLogRepository) List(userID uint, filter BrewingLogFilter) ([]models.BrewingLogEntry, error) {
	var entries []models.BrewingLogEntry
	query := r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean")
	if filter.BeanID != 0 {
		query = query.Where("coffee_bean_id = ?", filter.BeanID)
	}
	if filter.StartDate != nil {
		query = query.Where("brew_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("brew_date <= ?", *filter.EndDate)
	}
	err := query.Order("brew_date DESC").Order("created_at DESC").Order("id DESC").Find(&entries).Error
	return entries, err
}

func (r *BrewingLogRepository) DeleteInTx(tx *gorm.DB, entry *models.BrewingLogEntry) error {
	return tx.Delete(entry).Error
}
