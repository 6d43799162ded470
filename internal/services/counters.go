package services

import (
	"errors"

	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"gorm.io/gorm"
)

// beanCounters rebuilds total_cost, cups_brewed and cost_per_cup from the
// cost entries and brew logs. The stored columns are only a cache of those
// rows and are rewritten inside the same transaction as every change to them.
type beanCounters struct {
	beanRepo    *repository.BeanRepository
	costRepo    *repository.CostRepository
	brewLogRepo *repository.BrewingLogRepository
}

func (c beanCounters) lockBean(tx *gorm.DB, userID, beanID uint) (*models.CoffeeBean, error) {
	bean, err := c.beanRepo.FindByIDForUpdate(tx, userID, beanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBeanNotFound
		}
		return nil, err
	}
	return bean, nil
}

func (c beanCounters) recompute(tx *gorm.DB, bean *models.CoffeeBean) error {
	entries, err := c.costRepo.ListByBeanInTx(tx, bean.ID)
	if err != nil {
		return err
	}
	logs, err := c.brewLogRepo.ListByBeanInTx(tx, bean.ID)
	if err != nil {
		return err
	}

	bean.TotalCost = analytics.SumAmounts(entries)
	bean.CupsBrewed = analytics.SumCups(logs)
	bean.CostPerCup = analytics.CostPerCup(bean.TotalCost, bean.CupsBrewed)
	return c.beanRepo.UpdateInTx(tx, bean)
}
