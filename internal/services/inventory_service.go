package services

import (
	"errors"

	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LotInput struct {
	CoffeeBeanID    uint
	QuantityGrams   *float64
	PurchaseDate    string
	RoastDate       string
	ExpiryDate      string
	StorageLocation string
	Notes           string
}

// AdjustResult is the lot after an adjustment and whether the delta had to be
// clamped at zero.
type AdjustResult struct {
	Lot     *models.InventoryLot
	Clamped bool
}

type InventoryService struct {
	lotRepo  *repository.InventoryRepository
	beanRepo *repository.BeanRepository
	db       *gorm.DB
	clock    clock.Clock
}

func NewInventoryService(lotRepo *repository.InventoryRepository, beanRepo *repository.BeanRepository, db *gorm.DB, clk clock.Clock) *InventoryService {
	return &InventoryService{
		lotRepo:  lotRepo,
		beanRepo: beanRepo,
		db:       db,
		clock:    clk,
	}
}

func (s *InventoryService) Create(userID uint, in LotInput) (*models.InventoryLot, error) {
	lot := &models.InventoryLot{UserID: userID}
	if err := s.apply(userID, lot, in); err != nil {
		return nil, err
	}
	if err := s.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("inventory_lot", "create")
	return s.Get(userID, lot.ID)
}

func (s *InventoryService) Get(userID, id uint) (*models.InventoryLot, error) {
	lot, err := s.lotRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, ErrLotNotFound
	}
	return lot, nil
}

func (s *InventoryService) List(userID uint) ([]models.InventoryLot, error) {
	return s.lotRepo.List(userID)
}

func (s *InventoryService) ListByBean(userID, beanID uint) ([]models.InventoryLot, error) {
	bean, err := s.beanRepo.FindByID(userID, beanID)
	if err != nil {
		return nil, err
	}
	if bean == nil {
		return nil, ErrBeanNotFound
	}
	return s.lotRepo.ListByBean(userID, beanID)
}

func (s *InventoryService) Update(userID, id uint, in LotInput) (*models.InventoryLot, error) {
	lot, err := s.lotRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, ErrLotNotFound
	}
	if err := s.apply(userID, lot, in); err != nil {
		return nil, err
	}
	if err := s.lotRepo.Update(lot); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("inventory_lot", "update")
	return s.Get(userID, id)
}

func (s *InventoryService) Delete(userID, id uint) error {
	deleted, err := s.lotRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLotNotFound
	}
	metrics.Journal().IncWrite("inventory_lot", "delete")
	return nil
}

// Adjust applies a signed delta to a lot under a row lock. The quantity never
// drops below zero; a delta that would take it negative is clamped.
func (s *InventoryService) Adjust(userID, id uint, delta float64, reason string) (*AdjustResult, error) {
	var clamped bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		lot, err := s.lotRepo.FindByIDForUpdate(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLotNotFound
			}
			return err
		}

		previous := lot.QuantityGrams
		lot.QuantityGrams, clamped = analytics.AdjustQuantity(lot.QuantityGrams, delta)
		if err := s.lotRepo.UpdateInTx(tx, lot); err != nil {
			return err
		}

		logger.Info("inventory adjusted",
			zap.Uint("lot_id", lot.ID),
			zap.Float64("delta", delta),
			zap.Float64("from", previous),
			zap.Float64("to", lot.QuantityGrams),
			zap.Bool("clamped", clamped),
			zap.String("reason", reason))
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.Journal().ObserveAdjustment(clamped)

	lot, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{Lot: lot, Clamped: clamped}, nil
}

func (s *InventoryService) Summary(userID uint) (*analytics.InventorySummary, error) {
	stock, err := s.stock(userID)
	if err != nil {
		return nil, err
	}
	lots, err := s.lotRepo.List(userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeInventory(stock, lots, clock.Today(s.clock))
	return &summary, nil
}

func (s *InventoryService) LowStock(userID uint) ([]analytics.BeanStock, error) {
	stock, err := s.stock(userID)
	if err != nil {
		return nil, err
	}
	return analytics.LowStock(stock), nil
}

// ByOrigin rolls stock up per origin over beans that have at least one lot.
func (s *InventoryService) ByOrigin(userID uint) ([]analytics.OriginRollup, error) {
	stock, err := s.stock(userID)
	if err != nil {
		return nil, err
	}
	withLots := make([]analytics.BeanStock, 0, len(stock))
	for _, b := range stock {
		if b.LotCount > 0 {
			withLots = append(withLots, b)
		}
	}
	return analytics.RollupByOrigin(withLots), nil
}

func (s *InventoryService) stock(userID uint) ([]analytics.BeanStock, error) {
	beans, err := s.beanRepo.ListSummaries(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	stock := make([]analytics.BeanStock, len(beans))
	for i, b := range beans {
		stock[i] = analytics.BeanStock{
			BeanID:         b.ID,
			Name:           b.Name,
			Origin:         b.Origin,
			RoastLevel:     string(b.RoastLevel),
			TotalInventory: b.TotalInventory,
			LotCount:       int(b.LotCount),
		}
	}
	return stock, nil
}

func (s *InventoryService) apply(userID uint, lot *models.InventoryLot, in LotInput) error {
	verr := &ValidationError{}
	verr.beanID(in.CoffeeBeanID)
	if in.QuantityGrams == nil {
		verr.Add("quantity_grams", "is required")
	} else if *in.QuantityGrams < 0 {
		verr.Add("quantity_grams", "must not be negative")
	}
	purchaseDate := verr.date("purchase_date", in.PurchaseDate)
	roastDate := verr.date("roast_date", in.RoastDate)
	expiryDate := verr.date("expiry_date", in.ExpiryDate)
	if err := verr.Err(); err != nil {
		return err
	}

	bean, err := s.beanRepo.FindByID(userID, in.CoffeeBeanID)
	if err != nil {
		return err
	}
	if bean == nil {
		return ErrBeanNotFound
	}

	lot.CoffeeBeanID = bean.ID
	lot.QuantityGrams = *in.QuantityGrams
	lot.PurchaseDate = purchaseDate
	lot.RoastDate = roastDate
	lot.ExpiryDate = expiryDate
	lot.StorageLocation = in.StorageLocation
	lot.Notes = in.Notes
	return nil
}
