package services

import (
	"errors"
	"strings"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultUpcomingLimit = 5

type ScheduleInput struct {
	CoffeeBeanID  uint
	ScheduledDate string
	ScheduledTime string
	BrewMethod    string
	GrindSize     string
	WaterTemp     *int
	BrewTime      *int
	Notes         string
	Status        string
}

type ScheduleListFilter struct {
	Status    string
	StartDate string
	EndDate   string
}

type ScheduleStats struct {
	TotalScheduled int `json:"total_scheduled"`
	PlannedCount   int `json:"planned_count"`
	CompletedCount int `json:"completed_count"`
	CancelledCount int `json:"cancelled_count"`
	SkippedCount   int `json:"skipped_count"`
	TodayCount     int `json:"today_count"`
}

// transitions lists the status changes allowed through a regular update.
// Leaving cancelled or skipped needs Reopen and completed is final.
var transitions = map[models.ScheduleStatus][]models.ScheduleStatus{
	models.StatusPlanned: {models.StatusCompleted, models.StatusCancelled, models.StatusSkipped},
}

// CanTransition reports whether an update may move an entry from one status
// to another. Keeping the current status is always allowed.
func CanTransition(from, to models.ScheduleStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	beanRepo     *repository.BeanRepository
	db           *gorm.DB
	clock        clock.Clock
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository, beanRepo *repository.BeanRepository, db *gorm.DB, clk clock.Clock) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		beanRepo:     beanRepo,
		db:           db,
		clock:        clk,
	}
}

// Create adds an entry. A new entry starts as planned unless a status is
// given; creating one directly as completed stamps completed_at.
func (s *ScheduleService) Create(userID uint, in ScheduleInput) (*models.BrewingScheduleEntry, error) {
	fields, err := s.parse(userID, in)
	if err != nil {
		return nil, err
	}
	entry := &models.BrewingScheduleEntry{UserID: userID, Status: models.StatusPlanned}
	fields.assign(entry)
	if fields.status != "" {
		entry.Status = fields.status
	}
	if entry.Status == models.StatusCompleted {
		now := s.clock.Now()
		entry.CompletedAt = &now
	}
	if err := s.scheduleRepo.Create(entry); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("schedule_entry", "create")
	return s.Get(userID, entry.ID)
}

func (s *ScheduleService) Get(userID, id uint) (*models.BrewingScheduleEntry, error) {
	entry, err := s.scheduleRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrScheduleNotFound
	}
	return entry, nil
}

func (s *ScheduleService) List(userID uint, f ScheduleListFilter) ([]models.BrewingScheduleEntry, error) {
	verr := &ValidationError{}
	status := verr.status(f.Status)
	start := verr.date("start_date", f.StartDate)
	end := verr.date("end_date", f.EndDate)
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return s.scheduleRepo.List(userID, repository.ScheduleFilter{Status: status, StartDate: start, EndDate: end})
}

func (s *ScheduleService) Upcoming(userID uint, limit int) ([]models.BrewingScheduleEntry, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	return s.scheduleRepo.Upcoming(userID, models.NewDate(clock.Today(s.clock)), limit)
}

// Update rewrites the entry. A status change must follow CanTransition,
// otherwise ErrInvalidTransition is returned and nothing is written.
func (s *ScheduleService) Update(userID, id uint, in ScheduleInput) (*models.BrewingScheduleEntry, error) {
	fields, err := s.parse(userID, in)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.scheduleRepo.FindByIDForUpdate(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		next := fields.status
		if next == "" {
			next = entry.Status
		}
		if !CanTransition(entry.Status, next) {
			metrics.Journal().IncTransition(string(next), false)
			return ErrInvalidTransition
		}
		fields.assign(entry)
		s.setStatus(entry, next)
		return s.scheduleRepo.UpdateInTx(tx, entry)
	})
	if err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("schedule_entry", "update")
	return s.Get(userID, id)
}

// Reopen moves a cancelled or skipped entry back to planned.
func (s *ScheduleService) Reopen(userID, id uint) (*models.BrewingScheduleEntry, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.scheduleRepo.FindByIDForUpdate(tx, userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}
		switch entry.Status {
		case models.StatusPlanned:
			return nil
		case models.StatusCancelled, models.StatusSkipped:
			s.setStatus(entry, models.StatusPlanned)
			return s.scheduleRepo.UpdateInTx(tx, entry)
		default:
			metrics.Journal().IncTransition(string(models.StatusPlanned), false)
			return ErrInvalidTransition
		}
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, id)
}

func (s *ScheduleService) Delete(userID, id uint) error {
	deleted, err := s.scheduleRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrScheduleNotFound
	}
	metrics.Journal().IncWrite("schedule_entry", "delete")
	return nil
}

func (s *ScheduleService) Stats(userID uint) (*ScheduleStats, error) {
	entries, err := s.scheduleRepo.List(userID, repository.ScheduleFilter{})
	if err != nil {
		return nil, err
	}
	today := clock.Today(s.clock)
	stats := &ScheduleStats{}
	for _, e := range entries {
		stats.TotalScheduled++
		switch e.Status {
		case models.StatusPlanned:
			stats.PlannedCount++
		case models.StatusCompleted:
			stats.CompletedCount++
		case models.StatusCancelled:
			stats.CancelledCount++
		case models.StatusSkipped:
			stats.SkippedCount++
		}
		if models.TimeOf(&e.ScheduledDate).Equal(today) {
			stats.TodayCount++
		}
	}
	return stats, nil
}

// setStatus applies a status already checked by the caller. completed_at is
// stamped the first time the entry completes and never rewritten.
func (s *ScheduleService) setStatus(entry *models.BrewingScheduleEntry, next models.ScheduleStatus) {
	if entry.Status == next {
		return
	}
	logger.Info("schedule status changed",
		zap.Uint("schedule_id", entry.ID),
		zap.String("from", string(entry.Status)),
		zap.String("to", string(next)))
	entry.Status = next
	if next == models.StatusCompleted && entry.CompletedAt == nil {
		now := s.clock.Now()
		entry.CompletedAt = &now
	}
	metrics.Journal().IncTransition(string(next), true)
}

// scheduleFields is a validated ScheduleInput.
type scheduleFields struct {
	in            ScheduleInput
	beanID        uint
	scheduledDate datatypes.Date
	status        models.ScheduleStatus
}

func (f scheduleFields) assign(entry *models.BrewingScheduleEntry) {
	entry.CoffeeBeanID = f.beanID
	entry.ScheduledDate = f.scheduledDate
	entry.ScheduledTime = f.in.ScheduledTime
	entry.BrewMethod = strings.TrimSpace(f.in.BrewMethod)
	entry.GrindSize = f.in.GrindSize
	entry.WaterTemp = f.in.WaterTemp
	entry.BrewTime = f.in.BrewTime
	entry.Notes = f.in.Notes
}

// parse validates the input and checks the bean belongs to the user. It runs
// before any transaction is opened.
func (s *ScheduleService) parse(userID uint, in ScheduleInput) (*scheduleFields, error) {
	verr := &ValidationError{}
	verr.beanID(in.CoffeeBeanID)
	scheduledDate := verr.requiredDate("scheduled_date", in.ScheduledDate)
	verr.clockTime("scheduled_time", in.ScheduledTime)
	if in.WaterTemp != nil && (*in.WaterTemp < 1 || *in.WaterTemp > 212) {
		verr.Add("water_temp", "must be between 1 and 212")
	}
	if in.BrewTime != nil && *in.BrewTime < 0 {
		verr.Add("brew_time", "must not be negative")
	}
	status := verr.status(in.Status)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	bean, err := s.beanRepo.FindByID(userID, in.CoffeeBeanID)
	if err != nil {
		return nil, err
	}
	if bean == nil {
		return nil, ErrBeanNotFound
	}

	return &scheduleFields{
		in:            in,
		beanID:        bean.ID,
		scheduledDate: *scheduledDate,
		status:        status,
	}, nil
}
