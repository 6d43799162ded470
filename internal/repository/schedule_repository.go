package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleFilter struct {
	Status    models.ScheduleStatus
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(entry *models.BrewingScheduleEntry) error {
	return r.db.Omit(clause.Associations).Create(entry).Error
}

func (r *ScheduleRepository) FindByID(userID, id uint) (*models.BrewingScheduleEntry, error) {
	var entry models.BrewingScheduleEntry
	return firstOrNil(r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean").Where("id = ?", id), &entry)
}

func (r *ScheduleRepository) FindByIDForUpdate(tx *gorm.DB, userID, id uint) (*models.BrewingScheduleEntry, error) {
	var entry models.BrewingScheduleEntry
	err := forUpdate(tx).Scopes(ownedBy(userID)).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries in calendar order.
func (r *ScheduleRepository) List(userID uint, filter ScheduleFilter) ([]models.BrewingScheduleEntry, error) {
	var entries []models.BrewingScheduleEntry
	query := r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("scheduled_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("scheduled_date <= ?", *filter.EndDate)
	}
	err := query.Order("scheduled_date ASC").Order("scheduled_time ASC").Order("id ASC").Find(&entries).Error
	return entries, err
}

// Upcoming returns planned entries on or after today.
func (r *ScheduleRepository) Upcoming(userID uint, today datatypes.Date, limit int) ([]models.BrewingScheduleEntry, error) {
	var entries []models.BrewingScheduleEntry
	err := r.db.Scopes(ownedBy(userID)).
		Preload("CoffeeBean").
		Where("status = ? AND scheduled_date >= ?", models.StatusPlanned, today).
		Order("scheduled_date ASC").Order("scheduled_time ASC").Order("id ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *ScheduleRepository) Update(entry *models.BrewingScheduleEntry) error {
	return r.db.Omit(clause.Associations).Save(entry).Error
}

func (r *ScheduleRepository) UpdateInTx(tx *gorm.DB, entry *models.BrewingScheduleEntry) error {
	return tx.Omit(clause.Associations).Save(entry).Error
}

func (r *ScheduleRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.BrewingScheduleEntry{})
	return res.RowsAffected > 0, res.Error
}
