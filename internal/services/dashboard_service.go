package services

import (
	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/shopspring/decimal"
)

const DashboardAlertLimit = 3

type Dashboard struct {
	analytics.Dashboard
	Alerts          []FreshnessAlert
	UpcomingBrews   []models.BrewingScheduleEntry
	SpendByCurrency map[models.Currency]decimal.Decimal
}

type DashboardService struct {
	beanRepo     *repository.BeanRepository
	scheduleRepo *repository.ScheduleRepository
	clock        clock.Clock
}

func NewDashboardService(beanRepo *repository.BeanRepository, scheduleRepo *repository.ScheduleRepository, clk clock.Clock) *DashboardService {
	return &DashboardService{
		beanRepo:     beanRepo,
		scheduleRepo: scheduleRepo,
		clock:        clk,
	}
}

// Get builds the landing view from one bean listing, so every figure on it
// describes the same snapshot of beans.
func (s *DashboardService) Get(userID uint) (*Dashboard, error) {
	beans, err := s.beanRepo.ListSummaries(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	today := clock.Today(s.clock)

	upcoming, err := s.scheduleRepo.Upcoming(userID, models.NewDate(today), DefaultUpcomingLimit)
	if err != nil {
		return nil, err
	}

	overview := make([]analytics.BeanOverview, len(beans))
	plain := make([]models.CoffeeBean, len(beans))
	for i, b := range beans {
		overview[i] = analytics.BeanOverview{
			BeanID:         b.ID,
			Name:           b.Name,
			Origin:         b.Origin,
			RoastLevel:     b.RoastLevel,
			Currency:       b.Currency,
			PricePerGram:   b.PricePerGram,
			TotalInventory: b.TotalInventory,
			TastingCount:   int(b.TastingCount),
			AvgRating:      b.AvgRating,
		}
		plain[i] = b.CoffeeBean
	}

	alerts := buildAlerts(today, beans)
	if len(alerts) > DashboardAlertLimit {
		alerts = alerts[:DashboardAlertLimit]
	}

	return &Dashboard{
		Dashboard:       analytics.Rollup(overview),
		Alerts:          alerts,
		UpcomingBrews:   upcoming,
		SpendByCurrency: analytics.TotalsByCurrency(toBeanCosts(plain)),
	}, nil
}
