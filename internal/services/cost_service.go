package services

import (
	"errors"
	"time"

	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"gorm.io/gorm"
)

type CostInput struct {
	CoffeeBeanID  uint
	PurchaseDate  string
	Amount        *float64
	QuantityGrams float64
	Notes         string
}

type CostListFilter struct {
	BeanID    uint
	StartDate string
	EndDate   string
}

type CostService struct {
	beanRepo *repository.BeanRepository
	costRepo *repository.CostRepository
	counters beanCounters
	db       *gorm.DB
}

func NewCostService(beanRepo *repository.BeanRepository, costRepo *repository.CostRepository, brewLogRepo *repository.BrewingLogRepository, db *gorm.DB) *CostService {
	return &CostService{
		beanRepo: beanRepo,
		costRepo: costRepo,
		counters: beanCounters{beanRepo: beanRepo, costRepo: costRepo, brewLogRepo: brewLogRepo},
		db:       db,
	}
}

// Create records a purchase and rebuilds the bean's total_cost and
// cost_per_cup in the same transaction. The entry takes the bean's currency.
func (s *CostService) Create(userID uint, in CostInput) (*models.CostEntry, error) {
	verr := &ValidationError{}
	verr.beanID(in.CoffeeBeanID)
	purchaseDate := verr.requiredDate("purchase_date", in.PurchaseDate)
	if in.Amount == nil {
		verr.Add("amount", "is required")
	} else if *in.Amount < 0 {
		verr.Add("amount", "must not be negative")
	}
	if in.QuantityGrams <= 0 {
		verr.Add("quantity_grams", "must be greater than 0")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	amount := money(*in.Amount)
	entry := &models.CostEntry{
		UserID:        userID,
		CoffeeBeanID:  in.CoffeeBeanID,
		PurchaseDate:  *purchaseDate,
		Amount:        amount,
		QuantityGrams: in.QuantityGrams,
		CostPerGram:   analytics.CostPerGram(amount, in.QuantityGrams),
		Notes:         in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bean, err := s.counters.lockBean(tx, userID, in.CoffeeBeanID)
		if err != nil {
			return err
		}
		entry.Currency = bean.Currency
		if err := s.costRepo.CreateInTx(tx, entry); err != nil {
			return err
		}
		return s.counters.recompute(tx, bean)
	})
	if err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("cost_entry", "create")
	return entry, nil
}

func (s *CostService) Delete(userID, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.costRepo.FindByIDInTx(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCostEntryNotFound
			}
			return err
		}
		bean, err := s.counters.lockBean(tx, userID, entry.CoffeeBeanID)
		if err != nil {
			return err
		}
		if err := s.costRepo.DeleteInTx(tx, entry); err != nil {
			return err
		}
		return s.counters.recompute(tx, bean)
	})
	if err != nil {
		return err
	}
	metrics.Journal().IncWrite("cost_entry", "delete")
	return nil
}

func (s *CostService) List(userID uint, f CostListFilter) ([]models.CostEntry, error) {
	verr := &ValidationError{}
	start := verr.date("start_date", f.StartDate)
	end := verr.date("end_date", f.EndDate)
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return s.costRepo.List(userID, repository.CostFilter{BeanID: f.BeanID, StartDate: start, EndDate: end})
}

func (s *CostService) Analysis(userID uint) ([]analytics.CostAnalysisRow, error) {
	beans, err := s.beanCosts(userID)
	if err != nil {
		return nil, err
	}
	return analytics.CostAnalysis(beans), nil
}

func (s *CostService) ROI(userID uint) ([]analytics.ROIRow, error) {
	beans, err := s.beanCosts(userID)
	if err != nil {
		return nil, err
	}
	return analytics.ROI(beans), nil
}

// MonthlySpending rolls up the entries purchased in one calendar month.
func (s *CostService) MonthlySpending(userID uint, year, month int) (*analytics.MonthlySpendingReport, error) {
	verr := &ValidationError{}
	if year < 1 || year > 9999 {
		verr.Add("year", "must be between 1 and 9999")
	}
	if month < 1 || month > 12 {
		verr.Add("month", "must be between 1 and 12")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.costRepo.ListBetween(userID, models.NewDate(first), models.NewDate(first.AddDate(0, 1, 0)))
	if err != nil {
		return nil, err
	}

	spend := make([]analytics.SpendEntry, len(entries))
	for i, e := range entries {
		spend[i] = analytics.SpendEntry{
			BeanID:        e.CoffeeBeanID,
			BeanName:      e.CoffeeBean.Name,
			Origin:        e.CoffeeBean.Origin,
			Currency:      e.Currency,
			PurchaseDate:  time.Time(e.PurchaseDate),
			Amount:        e.Amount,
			QuantityGrams: e.QuantityGrams,
			CostPerGram:   e.CostPerGram,
		}
	}
	report := analytics.MonthlySpending(spend, year, time.Month(month))
	return &report, nil
}

func (s *CostService) beanCosts(userID uint) ([]analytics.BeanCost, error) {
	beans, err := s.beanRepo.List(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	return toBeanCosts(beans), nil
}

func toBeanCosts(beans []models.CoffeeBean) []analytics.BeanCost {
	out := make([]analytics.BeanCost, len(beans))
	for i, b := range beans {
		out[i] = analytics.BeanCost{
			BeanID:     b.ID,
			Name:       b.Name,
			Origin:     b.Origin,
			Currency:   b.Currency,
			TotalCost:  b.TotalCost,
			CupsBrewed: b.CupsBrewed,
			CostPerCup: b.CostPerCup,
		}
	}
	return out
}
