package services

import (
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
)

const DefaultTopRatedLimit = 10

type TastingInput struct {
	CoffeeBeanID     uint
	BrewMethod       string
	GrindSize        string
	WaterTemp        *float64
	BrewTime         *int
	AromaRating      *int
	AcidityRating    *int
	BodyRating       *int
	FlavorRating     *int
	AftertasteRating *int
	OverallRating    *int
	Notes            string
	TastingDate      string
}

type TastingStats struct {
	TotalTastings    int      `json:"total_tastings"`
	UniqueBeans      int      `json:"unique_beans"`
	AvgOverall       *float64 `json:"avg_overall"`
	AvgAroma         *float64 `json:"avg_aroma"`
	AvgAcidity       *float64 `json:"avg_acidity"`
	AvgBody          *float64 `json:"avg_body"`
	AvgFlavor        *float64 `json:"avg_flavor"`
	AvgAftertaste    *float64 `json:"avg_aftertaste"`
	ExcellentRatings int      `json:"excellent_ratings"`
	GoodRatings      int      `json:"good_ratings"`
	PoorRatings      int      `json:"poor_ratings"`
}

type TastingService struct {
	tastingRepo *repository.TastingRepository
	beanRepo    *repository.BeanRepository
	clock       clock.Clock
}

func NewTastingService(tastingRepo *repository.TastingRepository, beanRepo *repository.BeanRepository, clk clock.Clock) *TastingService {
	return &TastingService{
		tastingRepo: tastingRepo,
		beanRepo:    beanRepo,
		clock:       clk,
	}
}

func (s *TastingService) Create(userID uint, in TastingInput) (*models.TastingNote, error) {
	note := &models.TastingNote{UserID: userID}
	if err := s.apply(userID, note, in); err != nil {
		return nil, err
	}
	if err := s.tastingRepo.Create(note); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("tasting_note", "create")
	return s.Get(userID, note.ID)
}

func (s *TastingService) Get(userID, id uint) (*models.TastingNote, error) {
	note, err := s.tastingRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrTastingNotFound
	}
	return note, nil
}

func (s *TastingService) List(userID uint, beanID uint) ([]models.TastingNote, error) {
	return s.tastingRepo.List(userID, repository.TastingFilter{BeanID: beanID})
}

func (s *TastingService) ListByBean(userID, beanID uint) ([]models.TastingNote, error) {
	bean, err := s.beanRepo.FindByID(userID, beanID)
	if err != nil {
		return nil, err
	}
	if bean == nil {
		return nil, ErrBeanNotFound
	}
	return s.tastingRepo.List(userID, repository.TastingFilter{BeanID: beanID})
}

// Range lists tastings between two inclusive dates.
func (s *TastingService) Range(userID uint, startDate, endDate string) ([]models.TastingNote, error) {
	verr := &ValidationError{}
	start := verr.requiredDate("start_date", startDate)
	end := verr.requiredDate("end_date", endDate)
	if start != nil && end != nil && models.TimeOf(end).Before(*models.TimeOf(start)) {
		verr.Add("end_date", "must not be before start_date")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return s.tastingRepo.List(userID, repository.TastingFilter{StartDate: start, EndDate: end})
}

func (s *TastingService) TopRated(userID uint, limit int) ([]models.TastingNote, error) {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	return s.tastingRepo.TopRated(userID, limit)
}

func (s *TastingService) Update(userID, id uint, in TastingInput) (*models.TastingNote, error) {
	note, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(userID, note, in); err != nil {
		return nil, err
	}
	if err := s.tastingRepo.Update(note); err != nil {
		return nil, err
	}
	metrics.Journal().IncWrite("tasting_note", "update")
	return s.Get(userID, id)
}

func (s *TastingService) Delete(userID, id uint) error {
	deleted, err := s.tastingRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTastingNotFound
	}
	metrics.Journal().IncWrite("tasting_note", "delete")
	return nil
}

// Stats summarises all of a user's tastings. Sub-rating averages only count
// tastings that recorded that rating and are nil when none did. Overall
// ratings of 8 and up are excellent, 6 to 7 good and below 6 poor.
func (s *TastingService) Stats(userID uint) (*TastingStats, error) {
	notes, err := s.tastingRepo.List(userID, repository.TastingFilter{})
	if err != nil {
		return nil, err
	}

	stats := &TastingStats{}
	beans := make(map[uint]bool)
	var overall, aroma, acidity, body, flavor, aftertaste average
	for _, n := range notes {
		stats.TotalTastings++
		beans[n.CoffeeBeanID] = true
		overall.add(&n.OverallRating)
		aroma.add(n.AromaRating)
		acidity.add(n.AcidityRating)
		body.add(n.BodyRating)
		flavor.add(n.FlavorRating)
		aftertaste.add(n.AftertasteRating)

		switch {
		case n.OverallRating >= 8:
			stats.ExcellentRatings++
		case n.OverallRating >= 6:
			stats.GoodRatings++
		default:
			stats.PoorRatings++
		}
	}
	stats.UniqueBeans = len(beans)
	stats.AvgOverall = overall.value()
	stats.AvgAroma = aroma.value()
	stats.AvgAcidity = acidity.value()
	stats.AvgBody = body.value()
	stats.AvgFlavor = flavor.value()
	stats.AvgAftertaste = aftertaste.value()
	return stats, nil
}

type average struct {
	sum   int
	count int
}

func (a *average) add(v *int) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

func (a average) value() *float64 {
	if a.count == 0 {
		return nil
	}
	v := round2(float64(a.sum) / float64(a.count))
	return &v
}

func (s *TastingService) apply(userID uint, note *models.TastingNote, in TastingInput) error {
	verr := &ValidationError{}
	verr.beanID(in.CoffeeBeanID)
	if in.OverallRating == nil {
		verr.Add("overall_rating", "is required")
	} else {
		verr.rating("overall_rating", in.OverallRating)
	}
	verr.rating("aroma_rating", in.AromaRating)
	verr.rating("acidity_rating", in.AcidityRating)
	verr.rating("body_rating", in.BodyRating)
	verr.rating("flavor_rating", in.FlavorRating)
	verr.rating("aftertaste_rating", in.AftertasteRating)
	if in.BrewTime != nil && *in.BrewTime < 0 {
		verr.Add("brew_time", "must not be negative")
	}
	tastingDate := verr.date("tasting_date", in.TastingDate)
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
	if tastingDate == nil {
		today := models.NewDate(clock.Today(s.clock))
		tastingDate = &today
	}

	note.CoffeeBeanID = bean.ID
	note.BrewMethod = in.BrewMethod
	note.GrindSize = in.GrindSize
	note.WaterTemp = in.WaterTemp
	note.BrewTime = in.BrewTime
	note.AromaRating = in.AromaRating
	note.AcidityRating = in.AcidityRating
	note.BodyRating = in.BodyRating
	note.FlavorRating = in.FlavorRating
	note.AftertasteRating = in.AftertasteRating
	note.OverallRating = *in.OverallRating
	note.Notes = in.Notes
	note.TastingDate = *tastingDate
	return nil
}
