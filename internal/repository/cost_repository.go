package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CostFilter struct {
	BeanID    uint
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

func (r *CostRepository) CreateInTx(tx *gorm.DB, entry *models.CostEntry) error {
	return tx.Omit(clause.Associations).Create(entry).Error
}

func (r *CostRepository) FindByIDInTx(tx *gorm.DB, userID, id uint) (*models.CostEntry, error) {
	var entry models.CostEntry
	err := tx.Scopes(ownedBy(userID)).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByBeanInTx reads every entry of a bean inside tx, used to rebuild the
// bean's total_cost.
func (r *CostRepository) ListByBeanInTx(tx *gorm.DB, beanID uint) ([]models.CostEntry, error) {
	var entries []models.CostEntry
	err := tx.Where("coffee_bean_id = ?", beanID).Find(&entries).Error
	return entries, err
}

// List returns entries newest purchase first. Both date bounds are inclusive.
func (r *CostRepository) List(userID uint, filter CostFilter) ([]models.CostEntry, error) {
	var entries []models.CostEntry
	query := r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean")
	if filter.BeanID != 0 {
		query = query.Where("coffee_bean_id = ?", filter.BeanID)
	}
	if filter.StartDate != nil {
		query = query.Where("purchase_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("purchase_date <= ?", *filter.EndDate)
	}
	err := query.Order("purchase_date DESC").Order("id DESC").Find(&entries).Error
	return entries, err
}

// ListBetween returns entries with from <= purchase_date < to.
func (r *CostRepository) ListBetween(userID uint, from, to datatypes.Date) ([]models.CostEntry, error) {
	var entries []models.CostEntry
	err := r.db.Scopes(ownedBy(userID)).
		Preload("CoffeeBean").
		Where("purchase_date >= ? AND purchase_date < ?", from, to).
		Order("purchase_date ASC").Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *CostRepository) DeleteInTx(tx *gorm.DB, entry *models.CostEntry) error {
	return tx.Delete(entry).Error
}

func (r *CostRepository) CountByBeanInTx(tx *gorm.DB, beanID uint) (int64, error) {
	var n int64
	err := tx.Model(&models.CostEntry{}).Where("coffee_bean_id = ?", beanID).Count(&n).Error
	return n, err
}
