package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidExport    = errors.New("invalid export data")
)

// JournalExport is a signed snapshot of everything a user recorded. Money is
// serialised as decimal strings so the signature does not depend on float
// formatting.
type JournalExport struct {
	UserID     uint             `json:"user_id"`
	Username   string           `json:"username"`
	Beans      []BeanExportItem `json:"beans"`
	ExportedAt time.Time        `json:"exported_at"`
	Signature  string           `json:"signature"`
}

type BeanExportItem struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Origin      string              `json:"origin"`
	RoastLevel  string              `json:"roast_level"`
	Currency    string              `json:"currency"`
	BuyingPrice *decimal.Decimal    `json:"buying_price,omitempty"`
	AmountGrams *float64            `json:"amount_grams,omitempty"`
	RoastDate   string              `json:"roast_date,omitempty"`
	BestByDate  string              `json:"best_by_date,omitempty"`
	TotalCost   decimal.Decimal     `json:"total_cost"`
	CupsBrewed  int                 `json:"cups_brewed"`
	Lots        []LotExportItem     `json:"lots"`
	Tastings    []TastingExportItem `json:"tastings"`
	CostEntries []CostExportItem    `json:"cost_entries"`
	BrewLogs    []BrewLogExportItem `json:"brew_logs"`
}

type LotExportItem struct {
	ID              uint    `json:"id"`
	QuantityGrams   float64 `json:"quantity_grams"`
	PurchaseDate    string  `json:"purchase_date,omitempty"`
	ExpiryDate      string  `json:"expiry_date,omitempty"`
	StorageLocation string  `json:"storage_location,omitempty"`
}

type TastingExportItem struct {
	ID            uint   `json:"id"`
	TastingDate   string `json:"tasting_date"`
	BrewMethod    string `json:"brew_method,omitempty"`
	OverallRating int    `json:"overall_rating"`
	Notes         string `json:"notes,omitempty"`
}

type CostExportItem struct {
	ID            uint            `json:"id"`
	PurchaseDate  string          `json:"purchase_date"`
	Amount        decimal.Decimal `json:"amount"`
	QuantityGrams float64         `json:"quantity_grams"`
	Currency      string          `json:"currency"`
}

type BrewLogExportItem struct {
	ID         uint    `json:"id"`
	BrewDate   string  `json:"brew_date"`
	BrewMethod string  `json:"brew_method,omitempty"`
	GramsUsed  float64 `json:"grams_used"`
	CupsMade   int     `json:"cups_made"`
}

type ExportService struct {
	userRepo    *repository.UserRepository
	beanRepo    *repository.BeanRepository
	lotRepo     *repository.InventoryRepository
	tastingRepo *repository.TastingRepository
	costRepo    *repository.CostRepository
	brewLogRepo *repository.BrewingLogRepository
	signingKey  string
	clock       clock.Clock
}

func NewExportService(repos *repository.Repositories, signingKey string, clk clock.Clock) *ExportService {
	return &ExportService{
		userRepo:    repos.Users,
		beanRepo:    repos.Beans,
		lotRepo:     repos.Inventory,
		tastingRepo: repos.Tastings,
		costRepo:    repos.Costs,
		brewLogRepo: repos.BrewingLogs,
		signingKey:  signingKey,
		clock:       clk,
	}
}

func (s *ExportService) ExportJournal(userID uint) (*JournalExport, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	beans, err := s.beanRepo.List(userID, repository.BeanFilter{})
	if err != nil {
		return nil, err
	}
	lots, err := s.lotRepo.List(userID)
	if err != nil {
		return nil, err
	}
	tastings, err := s.tastingRepo.List(userID, repository.TastingFilter{})
	if err != nil {
		return nil, err
	}
	costs, err := s.costRepo.List(userID, repository.CostFilter{})
	if err != nil {
		return nil, err
	}
	brewLogs, err := s.brewLogRepo.List(userID, repository.BrewingLogFilter{})
	if err != nil {
		return nil, err
	}

	items := make([]BeanExportItem, len(beans))
	index := make(map[uint]int, len(beans))
	for i, b := range beans {
		index[b.ID] = i
		item := BeanExportItem{
			ID:          b.ID,
			Name:        b.Name,
			Origin:      b.Origin,
			RoastLevel:  string(b.RoastLevel),
			Currency:    string(b.Currency),
			AmountGrams: b.AmountGrams,
			RoastDate:   models.FormatDate(b.RoastDate),
			BestByDate:  models.FormatDate(b.BestByDate),
			TotalCost:   b.TotalCost,
			CupsBrewed:  b.CupsBrewed,
			Lots:        []LotExportItem{},
			Tastings:    []TastingExportItem{},
			CostEntries: []CostExportItem{},
			BrewLogs:    []BrewLogExportItem{},
		}
		if b.BuyingPrice.Valid {
			price := b.BuyingPrice.Decimal
			item.BuyingPrice = &price
		}
		items[i] = item
	}

	for _, l := range lots {
		if i, ok := index[l.CoffeeBeanID]; ok {
			items[i].Lots = append(items[i].Lots, LotExportItem{
				ID:              l.ID,
				QuantityGrams:   l.QuantityGrams,
				PurchaseDate:    models.FormatDate(l.PurchaseDate),
				ExpiryDate:      models.FormatDate(l.ExpiryDate),
				StorageLocation: l.StorageLocation,
			})
		}
	}
	for _, t := range tastings {
		if i, ok := index[t.CoffeeBeanID]; ok {
			items[i].Tastings = append(items[i].Tastings, TastingExportItem{
				ID:            t.ID,
				TastingDate:   models.FormatDate(&t.TastingDate),
				BrewMethod:    t.BrewMethod,
				OverallRating: t.OverallRating,
				Notes:         t.Notes,
			})
		}
	}
	for _, c := range costs {
		if i, ok := index[c.CoffeeBeanID]; ok {
			items[i].CostEntries = append(items[i].CostEntries, CostExportItem{
				ID:            c.ID,
				PurchaseDate:  models.FormatDate(&c.PurchaseDate),
				Amount:        c.Amount,
				QuantityGrams: c.QuantityGrams,
				Currency:      string(c.Currency),
			})
		}
	}
	for _, l := range brewLogs {
		if i, ok := index[l.CoffeeBeanID]; ok {
			items[i].BrewLogs = append(items[i].BrewLogs, BrewLogExportItem{
				ID:         l.ID,
				BrewDate:   models.FormatDate(&l.BrewDate),
				BrewMethod: l.BrewMethod,
				GramsUsed:  l.GramsUsed,
				CupsMade:   l.CupsMade,
			})
		}
	}

	export := &JournalExport{
		UserID:     user.ID,
		Username:   user.Username,
		Beans:      items,
		ExportedAt: s.clock.Now().UTC().Truncate(time.Second),
	}

	signature, err := s.signExport(export)
	if err != nil {
		return nil, err
	}
	export.Signature = signature

	return export, nil
}

// VerifyExport checks raw export JSON against a detached signature.
func (s *ExportService) VerifyExport(exportData []byte, signature string) (bool, error) {
	var export JournalExport
	if err := json.Unmarshal(exportData, &export); err != nil {
		return false, ErrInvalidExport
	}

	computedSignature, err := s.signExport(&export)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computedSignature), []byte(signature)), nil
}

// VerifyExportData checks an export that carries its own signature.
func (s *ExportService) VerifyExportData(exportData *JournalExport) (bool, error) {
	if exportData.Signature == "" {
		return false, ErrInvalidExport
	}

	computedSignature, err := s.signExport(exportData)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computedSignature), []byte(exportData.Signature)), nil
}

func (s *ExportService) signExport(export *JournalExport) (string, error) {
	exportCopy := *export
	exportCopy.Signature = ""

	data, err := json.Marshal(exportCopy)
	if err != nil {
		return "", err
	}

	h := hmac.New(sha256.New, []byte(s.signingKey))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
