package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"gorm.io/gorm"
)

type BrewLogInput struct {
	CoffeeBeanID uint
	BrewDate     string
	BrewMethod   string
	GramsUsed    float64
	CupsMade     *int
	Notes        string
}

type BrewLogListFilter struct {
	BeanID    uint
	StartDate string
	EndDate   string
}

type BrewLogStats struct {
	TotalBrews        int     `json:"total_brews"`
	TotalCups         int     `json:"total_cups"`
	TotalGramsUsed    float64 `json:"total_grams_used"`
	AvgGramsPerBrew   float64 `json:"avg_grams_per_brew"`
	AvgCupsPerBrew    float64 `json:"avg_cups_per_brew"`
	UniqueBeansBrewed int     `json:"unique_beans_brewed"`
	UniqueMethodsUsed int     `json:"unique_methods_used"`
}

type MethodBreakdown struct {
	BrewMethod   string  `json:"brew_method"`
	BrewCount    int     `json:"brew_count"`
	TotalCups    int     `json:"total_cups"`
	AvgGramsUsed float64 `json:"avg_grams_used"`
}

type BrewingLogService struct {
	brewLogRepo *repository.BrewingLogRepository
	counters    beanCounters
	db          *gorm.DB
	clock       clock.Clock
}

func NewBrewingLogService(beanRepo *repository.BeanRepository, costRepo *repository.CostRepository, brewLogRepo *repository.BrewingLogRepository, db *gorm.DB, clk clock.Clock) *BrewingLogService {
	return &BrewingLogService{
		brewLogRepo: brewLogRepo,
		counters:    beanCounters{beanRepo: beanRepo, costRepo: costRepo, brewLogRepo: brewLogRepo},
		db:          db,
		clock:       clk,
	}
}

// Create logs grounds consumed and rebuilds cups_brewed and cost_per_cup on
// the bean. cups_made defaults to 1 and brew_date to today.
func (s *BrewingLogService) Create(userID uint, in BrewLogInput) (*models.BrewingLogEntry, error) {
	verr := &ValidationError{}
	verr.beanID(in.CoffeeBeanID)
	brewDate := verr.date("brew_date", in.BrewDate)
	if in.GramsUsed <= 0 {
		verr.Add("grams_used", "must be greater than 0")
	}
	cups := 1
	if in.CupsMade != nil {
		cups = *in.CupsMade
		if cups < 1 {
			verr.Add("cups_made", "must be at least 1")
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	if brewDate == nil {
		today := models.NewDate(clock.Today(s.clock))
		brewDate = &today
	}

	entry := &models.BrewingLogEntry{
		UserID:       userID,
		CoffeeBeanID: in.CoffeeBeanID,
		BrewDate:     *brewDate,
		BrewMethod:   strings.TrimSpace(in.BrewMethod),
		GramsUsed:    in.GramsUsed,
		CupsMade:     cups,
		Notes:        in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bean, err := s.counters.lockBean(tx, userID, in.CoffeeBeanID)
		if err != nil {
			return err
		}
		if err := s.brewLogRepo.CreateInTx(tx, entry); err != nil {
			return err
		}
		return s.counters.recompute(tx, bean)
	})
	if err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("brew_log", "create")
	return entry, nil
}

func (s *BrewingLogService) Delete(userID, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.brewLogRepo.FindByIDInTx(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBrewLogNotFound
			}
			return err
		}
		bean, err := s.counters.lockBean(tx, userID, entry.CoffeeBeanID)
		if err != nil {
			return err
		}
		if err := s.brewLogRepo.DeleteInTx(tx, entry); err != nil {
			return err
		}
		return s.counters.recompute(tx, bean)
	})
	if err != nil {
		return err
	}
	metrics.Journal().IncWrite("brew_log", "delete")
	return nil
}

func (s *BrewingLogService) List(userID uint, f BrewLogListFilter) ([]models.BrewingLogEntry, error) {
	verr := &ValidationError{}
	start := verr.date("start_date", f.StartDate)
	end := verr.date("end_date", f.EndDate)
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return s.brewLogRepo.List(userID, repository.BrewingLogFilter{BeanID: f.BeanID, StartDate: start, EndDate: end})
}

func (s *BrewingLogService) Stats(userID uint) (*BrewLogStats, error) {
	logs, err := s.brewLogRepo.List(userID, repository.BrewingLogFilter{})
	if err != nil {
		return nil, err
	}

	stats := &BrewLogStats{}
	beans := make(map[uint]bool)
	methods := make(map[string]bool)
	for _, l := range logs {
		stats.TotalBrews++
		stats.TotalCups += l.CupsMade
		stats.TotalGramsUsed += l.GramsUsed
		beans[l.CoffeeBeanID] = true
		if l.BrewMethod != "" {
			methods[l.BrewMethod] = true
		}
	}
	stats.UniqueBeansBrewed = len(beans)
	stats.UniqueMethodsUsed = len(methods)
	if stats.TotalBrews > 0 {
		stats.AvgGramsPerBrew = round2(stats.TotalGramsUsed / float64(stats.TotalBrews))
		stats.AvgCupsPerBrew = round2(float64(stats.TotalCups) / float64(stats.TotalBrews))
	}
	return stats, nil
}

// Methods breaks the log down by brew method, most used first. Entries
// without a method are left out.
func (s *BrewingLogService) Methods(userID uint) ([]MethodBreakdown, error) {
	logs, err := s.brewLogRepo.List(userID, repository.BrewingLogFilter{})
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	grams := make(map[string]float64)
	out := []MethodBreakdown{}
	for _, l := range logs {
		if l.BrewMethod == "" {
			continue
		}
		i, ok := index[l.BrewMethod]
		if !ok {
			i = len(out)
			index[l.BrewMethod] = i
			out = append(out, MethodBreakdown{BrewMethod: l.BrewMethod})
		}
		out[i].BrewCount++
		out[i].TotalCups += l.CupsMade
		grams[l.BrewMethod] += l.GramsUsed
	}
	for i := range out {
		out[i].AvgGramsUsed = round2(grams[out[i].BrewMethod] / float64(out[i].BrewCount))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BrewCount != out[j].BrewCount {
			return out[i].BrewCount > out[j].BrewCount
		}
		return out[i].BrewMethod < out[j].BrewMethod
	})
	return out, nil
}
