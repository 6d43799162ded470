package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(lot *models.InventoryLot) error {
	return r.db.Omit(clause.Associations).Create(lot).Error
}

func (r *InventoryRepository) FindByID(userID, id uint) (*models.InventoryLot, error) {
	var lot models.InventoryLot
	return firstOrNil(r.db.Scopes(ownedBy(userID)).Preload("CoffeeBean").Where("id = ?", id), &lot)
}

func (r *InventoryRepository) FindByIDForUpdate(tx *gorm.DB, userID, id uint) (*models.InventoryLot, error) {
	var lot models.InventoryLot
	err := forUpdate(tx).Scopes(ownedBy(userID)).Where("id = ?", id).First(&lot).Error
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *InventoryRepository) List(userID uint) ([]models.InventoryLot, error) {
	var lots []models.InventoryLot
	err := r.db.Scopes(ownedBy(userID)).
		Preload("CoffeeBean").
		Order("created_at DESC").Order("id DESC").
		Find(&lots).Error
	return lots, err
}

func (r *InventoryRepository) ListByBean(userID, beanID uint) ([]models.InventoryLot, error) {
	var lots []models.InventoryLot
	err := r.db.Scopes(ownedBy(userID)).
		Preload("CoffeeBean").
		Where("coffee_bean_id = ?", beanID).
		Order("purchase_date DESC").Order("id DESC").
		Find(&lots).Error
	return lots, err
}

func (r *InventoryRepository) Update(lot *models.InventoryLot) error {
	return r.db.Omit(clause.Associations).Save(lot).Error
}

func (r *InventoryRepository) UpdateInTx(tx *gorm.DB, lot *models.InventoryLot) error {
	return tx.Omit(clause.Associations).Save(lot).Error
}

func (r *InventoryRepository) Delete(userID, id uint) (bool, error) {
	res := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.InventoryLot{})
	return res.RowsAffected > 0, res.Error
}
