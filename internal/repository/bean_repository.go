package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BeanFilter struct {
	RoastLevel string
	Origin     string
}

type BeanRepository struct {
	db *gorm.DB
}

func NewBeanRepository(db *gorm.DB) *BeanRepository {
	return &BeanRepository{db: db}
}

func (r *BeanRepository) Create(bean *models.CoffeeBean) error {
	return r.db.Omit(clause.Associations).Create(bean).Error
}

func (r *BeanRepository) CreateInTx(tx *gorm.DB, bean *models.CoffeeBean) error {
	return tx.Omit(clause.Associations).Create(bean).Error
}

func (r *BeanRepository) FindByID(userID, id uint) (*models.CoffeeBean, error) {
	var bean models.CoffeeBean
	return firstOrNil(r.db.Scopes(ownedBy(userID)).Where("id = ?", id), &bean)
}

// FindByIDForUpdate locks the bean row for the rest of tx. It returns
// gorm.ErrRecordNotFound when the bean does not exist for this user.
func (r *BeanRepository) FindByIDForUpdate(tx *gorm.DB, userID, id uint) (*models.CoffeeBean, error) {
	var bean models.CoffeeBean
	err := forUpdate(tx).Scopes(ownedBy(userID)).Where("id = ?", id).First(&bean).Error
	if err != nil {
		return nil, err
	}
	return &bean, nil
}

// List returns the user's beans newest first. The order is part of the
// contract: dashboard picks break ties by it.
func (r *BeanRepository) List(userID uint, filter BeanFilter) ([]models.CoffeeBean, error) {
	var beans []models.CoffeeBean
	query := r.db.Scopes(ownedBy(userID))
	if filter.RoastLevel != "" {
		query = query.Where("roast_level = ?", filter.RoastLevel)
	}
	if filter.Origin != "" {
		query = query.Where("LOWER(origin) LIKE LOWER(?)", "%"+filter.Origin+"%")
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&beans).Error
	return beans, err
}

type lotTotals struct {
	CoffeeBeanID   uint
	TotalInventory float64
	LotCount       int64
}

type tastingTotals struct {
	CoffeeBeanID uint
	TastingCount int64
	AvgRating    *float64
}

// ListSummaries is List annotated with stock and tasting aggregates.
func (r *BeanRepository) ListSummaries(userID uint, filter BeanFilter) ([]models.BeanSummary, error) {
	beans, err := r.List(userID, filter)
	if err != nil {
		return nil, err
	}
	return r.annotate(userID, beans)
}

func (r *BeanRepository) FindSummary(userID, id uint) (*models.BeanSummary, error) {
	bean, err := r.FindByID(userID, id)
	if err != nil || bean == nil {
		return nil, err
	}
	summaries, err := r.annotate(userID, []models.CoffeeBean{*bean})
	if err != nil {
		return nil, err
	}
	return &summaries[0], nil
}

// annotate aggregates lots and tastings in two separate grouped queries so
// neither multiplies the other.
func (r *BeanRepository) annotate(userID uint, beans []models.CoffeeBean) ([]models.BeanSummary, error) {
	summaries := make([]models.BeanSummary, 0, len(beans))
	if len(beans) == 0 {
		return summaries, nil
	}
	ids := make([]uint, len(beans))
	for i, b := range beans {
		ids[i] = b.ID
	}

	var lots []lotTotals
	err := r.db.Model(&models.InventoryLot{}).
		Select("coffee_bean_id, COALESCE(SUM(quantity_grams), 0) AS total_inventory, COUNT(*) AS lot_count").
		Scopes(ownedBy(userID)).
		Where("coffee_bean_id IN ?", ids).
		Group("coffee_bean_id").
		Scan(&lots).Error
	if err != nil {
		return nil, err
	}

	var tastings []tastingTotals
	err = r.db.Model(&models.TastingNote{}).
		Select("coffee_bean_id, COUNT(*) AS tasting_count, AVG(overall_rating) AS avg_rating").
		Scopes(ownedBy(userID)).
		Where("coffee_bean_id IN ?", ids).
		Group("coffee_bean_id").
		Scan(&tastings).Error
	if err != nil {
		return nil, err
	}

	lotsByBean := make(map[uint]lotTotals, len(lots))
	for _, l := range lots {
		lotsByBean[l.CoffeeBeanID] = l
	}
	tastingsByBean := make(map[uint]tastingTotals, len(tastings))
	for _, t := range tastings {
		tastingsByBean[t.CoffeeBeanID] = t
	}

	for _, b := range beans {
		l := lotsByBean[b.ID]
		t := tastingsByBean[b.ID]
		summaries = append(summaries, models.BeanSummary{
			CoffeeBean:     b,
			TotalInventory: l.TotalInventory,
			LotCount:       l.LotCount,
			TastingCount:   t.TastingCount,
			AvgRating:      t.AvgRating,
		})
	}
	return summaries, nil
}

func (r *BeanRepository) Update(bean *models.CoffeeBean) error {
	return r.db.Omit(clause.Associations).Save(bean).Error
}

func (r *BeanRepository) UpdateInTx(tx *gorm.DB, bean *models.CoffeeBean) error {
	return tx.Omit(clause.Associations).Save(bean).Error
}

// DeleteCascadeInTx removes the bean and every row that references it.
func (r *BeanRepository) DeleteCascadeInTx(tx *gorm.DB, userID, id uint) error {
	dependents := []interface{}{
		&models.InventoryLot{},
		&models.TastingNote{},
		&models.BrewingScheduleEntry{},
		&models.CostEntry{},
		&models.BrewingLogEntry{},
	}
	for _, model := range dependents {
		if err := tx.Scopes(ownedBy(userID)).Where("coffee_bean_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.CoffeeBean{}).Error
}
