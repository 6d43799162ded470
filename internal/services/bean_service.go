package services

import (
	"errors"
	"strings"
	"time"

	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BeanInput carries the editable fields of a bean. Dates are YYYY-MM-DD
// strings, empty meaning unset.
type BeanInput struct {
	Name          string
	Origin        string
	RoastLevel    string
	ProcessMethod string
	Altitude      string
	Varietal      string
	Description   string
	Supplier      string
	PhotoURL      string
	BuyingDate    string
	BuyingPlace   string
	BuyingPrice   *float64
	Currency      string
	AmountGrams   *float64
	RoastDate     string
	BestByDate    string
}

type BeanService struct {
	beanRepo *repository.BeanRepository
	costRepo *repository.CostRepository
	db       *gorm.DB
	clock    clock.Clock
}

func NewBeanService(beanRepo *repository.BeanRepository, costRepo *repository.CostRepository, db *gorm.DB, clk clock.Clock) *BeanService {
	return &BeanService{
		beanRepo: beanRepo,
		costRepo: costRepo,
		db:       db,
		clock:    clk,
	}
}

func (s *BeanService) Create(userID uint, in BeanInput) (*models.CoffeeBean, error) {
	bean := &models.CoffeeBean{UserID: userID}
	if err := applyBeanInput(bean, in, clock.Today(s.clock)); err != nil {
		return nil, err
	}
	if err := s.beanRepo.Create(bean); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("bean", "create")
	return bean, nil
}

func (s *BeanService) Get(userID, id uint) (*models.BeanSummary, error) {
	summary, err := s.beanRepo.FindSummary(userID, id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrBeanNotFound
	}
	return summary, nil
}

func (s *BeanService) List(userID uint, filter repository.BeanFilter) ([]models.BeanSummary, error) {
	if filter.RoastLevel != "" {
		verr := &ValidationError{}
		verr.roastLevel(filter.RoastLevel)
		if err := verr.Err(); err != nil {
			return nil, err
		}
	}
	return s.beanRepo.ListSummaries(userID, filter)
}

// Update replaces the editable fields and recomputes price_per_gram. The
// currency is frozen once cost entries exist, since their amounts were
// recorded in it.
func (s *BeanService) Update(userID, id uint, in BeanInput) (*models.CoffeeBean, error) {
	var bean *models.CoffeeBean
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		bean, err = s.beanRepo.FindByIDForUpdate(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBeanNotFound
			}
			return err
		}

		previousCurrency := bean.Currency
		if err := applyBeanInput(bean, in, clock.Today(s.clock)); err != nil {
			return err
		}
		if bean.Currency != previousCurrency {
			entries, err := s.costRepo.CountByBeanInTx(tx, bean.ID)
			if err != nil {
				return err
			}
			if entries > 0 {
				logger.Warn("bean currency change refused",
					zap.Uint("bean_id", bean.ID),
					zap.String("from", string(previousCurrency)),
					zap.String("to", string(bean.Currency)),
					zap.Int64("cost_entries", entries))
				verr := &ValidationError{}
				verr.Add("currency", "cannot change from %s while cost entries exist", previousCurrency)
				return verr.Err()
			}
		}
		return s.beanRepo.UpdateInTx(tx, bean)
	})
	if err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("bean", "update")
	return bean, nil
}

// Delete removes the bean together with its lots, tastings, schedule, cost
// entries and brew logs.
func (s *BeanService) Delete(userID, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.beanRepo.FindByIDForUpdate(tx, userID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBeanNotFound
			}
			return err
		}
		return s.beanRepo.DeleteCascadeInTx(tx, userID, id)
	})
	if err != nil {
		return err
	}
	metrics.Journal().IncWrite("bean", "delete")
	return nil
}

func applyBeanInput(bean *models.CoffeeBean, in BeanInput, today time.Time) error {
	verr := &ValidationError{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name", "is required")
	}
	roastLevel := verr.roastLevel(in.RoastLevel)
	currency := verr.currency(in.Currency)
	buyingDate := verr.date("buying_date", in.BuyingDate)
	roastDate := verr.date("roast_date", in.RoastDate)
	if roastDate != nil && time.Time(*roastDate).After(today) {
		verr.Add("roast_date", "must not be in the future")
	}
	bestByDate := verr.date("best_by_date", in.BestByDate)
	if in.BuyingPrice != nil && *in.BuyingPrice < 0 {
		verr.Add("buying_price", "must not be negative")
	}
	if in.AmountGrams != nil && *in.AmountGrams < 0 {
		verr.Add("amount_grams", "must not be negative")
	}
	if err := verr.Err(); err != nil {
		return err
	}

	bean.Name = name
	bean.Origin = strings.TrimSpace(in.Origin)
	bean.RoastLevel = roastLevel
	bean.ProcessMethod = in.ProcessMethod
	bean.Altitude = in.Altitude
	bean.Varietal = in.Varietal
	bean.Description = in.Description
	bean.Supplier = in.Supplier
	bean.PhotoURL = in.PhotoURL
	bean.BuyingDate = buyingDate
	bean.BuyingPlace = in.BuyingPlace
	bean.Currency = currency
	bean.AmountGrams = in.AmountGrams
	bean.RoastDate = roastDate
	bean.BestByDate = bestByDate

	bean.BuyingPrice = decimal.NullDecimal{}
	if in.BuyingPrice != nil {
		bean.BuyingPrice = decimal.NewNullDecimal(money(*in.BuyingPrice))
	}
	bean.PricePerGram = analytics.PricePerGram(bean.BuyingPrice, bean.AmountGrams)
	return nil
}
