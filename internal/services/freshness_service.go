package services

import (
	"time"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/freshness"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
)

// FreshnessAlert is a classified bean ready for display.
type FreshnessAlert struct {
	BeanID          uint
	Name            string
	Origin          string
	RoastLevel      models.RoastLevel
	RoastDate       *time.Time
	BestByDate      *time.Time
	TotalInventory  float64
	Status          freshness.Status
	Priority        int
	DaysUntilExpiry *int
	DaysSinceRoast  *int
}

type FreshnessService struct {
	beanRepo *repository.BeanRepository
	clock    clock.Clock
}

func NewFreshnessService(beanRepo *repository.BeanRepository, clk clock.Clock) *FreshnessService {
	return &FreshnessService{beanRepo: beanRepo, clock: clk}
}

// Alerts lists in-stock beans with a date, most urgent first.
func (s *FreshnessService) Alerts(userID uint) ([]FreshnessAlert, error) {
	beans, err := s.beanRepo.ListSummaries(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	return buildAlerts(clock.Today(s.clock), beans), nil
}

func (s *FreshnessService) Summary(userID uint) (*freshness.Summary, error) {
	beans, err := s.beanRepo.ListSummaries(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	summary := freshness.Summarize(clock.Today(s.clock), freshnessInputs(beans))
	return &summary, nil
}

func buildAlerts(today time.Time, beans []models.BeanSummary) []FreshnessAlert {
	byID := make(map[uint]*models.BeanSummary, len(beans))
	for i := range beans {
		byID[beans[i].ID] = &beans[i]
	}

	classified := freshness.Alerts(today, freshnessInputs(beans))
	alerts := make([]FreshnessAlert, len(classified))
	for i, a := range classified {
		bean := byID[a.BeanID]
		alerts[i] = FreshnessAlert{
			BeanID:          a.BeanID,
			Name:            bean.Name,
			Origin:          bean.Origin,
			RoastLevel:      bean.RoastLevel,
			RoastDate:       a.RoastDate,
			BestByDate:      a.BestByDate,
			TotalInventory:  a.TotalInventory,
			Status:          a.Status,
			Priority:        freshness.Priority(a.Status),
			DaysUntilExpiry: a.DaysUntilExpiry,
			DaysSinceRoast:  a.DaysSinceRoast,
		}
	}
	return alerts
}

func freshnessInputs(beans []models.BeanSummary) []freshness.Input {
	inputs := make([]freshness.Input, len(beans))
	for i, b := range beans {
		inputs[i] = freshness.Input{
			BeanID:         b.ID,
			RoastDate:      models.TimeOf(b.RoastDate),
			BestByDate:     models.TimeOf(b.BestByDate),
			TotalInventory: b.TotalInventory,
		}
	}
	return inputs
}
