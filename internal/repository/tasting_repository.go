package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TastingFilter struct {
	BeanID    uint
	StartDate *datatypes.Date
	EndDate   *datatypes.Date
}

type TastingRepository struct {
	db *gorm.DB
}

func NewTastingRepository(db *gorm.DB) *TastingRepository {
	return &TastingRepository{db: db}
}

func (r *TastingRepository) Create(note *models.TastingNote) error {
	return r.db.Omit(clause.Associations).Create(note).Error
}

func (r *TastingRepository) FindByID(userID, id uint) (*models.TastingNote, error) {
	var note models.TastingNote
	return firstOrNil(r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean").Where("id = ?", id), &note)
}

// List returns notes newest tasting first.
func (r *TastingRepository) List(userID uint, filter TastingFilter) ([]models.TastingNote, error) {
	var notes []models.TastingNote
	query := r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean")
	if filter.BeanID != 0 {
		query = query.Where("coffee_bean_id = ?", filter.BeanID)
	}
	if filter.StartDate != nil {
		query = query.Where("tasting_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("tasting_date <= ?", *filter.EndDate)
	}
	err := query.Order("tasting_date DESC").Order("created_at DESC").Order("id DESC").Find(&notes).Error
	return notes, err
}

func (r *TastingRepository) TopRated(userID uint, limit int) ([]models.TastingNote, error) {
	var notes []models.TastingNote
	err := r.db.Scopes(ownedBy(userID)).
		Preload("CoffeeBean").
		Order("overall_rating DESC").Order("tasting_date DESC").Order("id DESC").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

func (r *TastingRepository) Update(note *models.TastingNote) error {
	return r.db.Omit(clause.Associations).Save(note).Error
}

func (r *TastingRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.TastingNote{})
	return res.RowsAffected > 0, res.Error
}
