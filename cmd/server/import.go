package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BeanImport is one entry of an import file. Lots are optional.
type BeanImport struct {
	Name          string      `json:"name"`
	Origin        string      `json:"origin"`
	RoastLevel    string      `json:"roast_level"`
	ProcessMethod string      `json:"process_method"`
	Varietal      string      `json:"varietal"`
	Description   string      `json:"description"`
	Supplier      string      `json:"supplier"`
	BuyingDate    string      `json:"buying_date"`
	BuyingPlace   string      `json:"buying_place"`
	BuyingPrice   *float64    `json:"buying_price"`
	Currency      string      `json:"currency"`
	AmountGrams   *float64    `json:"amount_grams"`
	RoastDate     string      `json:"roast_date"`
	BestByDate    string      `json:"best_by_date"`
	Lots          []LotImport `json:"lots"`
}

type LotImport struct {
	QuantityGrams   float64 `json:"quantity_grams"`
	PurchaseDate    string  `json:"purchase_date"`
	ExpiryDate      string  `json:"expiry_date"`
	StorageLocation string  `json:"storage_location"`
}

var (
	importFile    string
	importUser    string
	strictMode    bool
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,50}$`)
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import coffee beans from JSON file",
	Long: `Import coffee beans, and optionally their inventory lots, for one user.

Expected JSON format:
[
  {"name": "Yirgacheffe", "origin": "Ethiopia", "roast_level": "Light",
   "buying_price": 18.5, "currency": "USD", "amount_grams": 250,
   "roast_date": "2026-09-30",
   "lots": [{"quantity_grams": 250, "storage_location": "pantry"}]}
]

By default invalid entries are skipped and reported.
Use --strict to stop at the first invalid entry instead.`,
	Example: `  brewlog import -f beans.json -u alice
  brewlog import --file beans.json --user alice --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport()
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().StringVarP(&importUser, "user", "u", "", "Owner of the imported beans (required)")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	importCmd.MarkFlagRequired("file")
	importCmd.MarkFlagRequired("user")
}

func runImport() error {
	if !usernameRegex.MatchString(importUser) {
		return fmt.Errorf("invalid username %q", importUser)
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var beans []BeanImport
	if err := json.Unmarshal(data, &beans); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.users.GetOrCreate(importUser)
	if err != nil {
		return fmt.Errorf("failed to get or create user: %w", err)
	}

	logger.Info("starting import",
		zap.Int("beans", len(beans)),
		zap.String("file", importFile),
		zap.String("user", user.Username))

	imported, skipped := 0, 0
	for i, b := range beans {
		if err := importBean(a, user.ID, b); err != nil {
			if strictMode {
				return fmt.Errorf("import failed for entry %d (%s): %w", i, b.Name, err)
			}
			logger.Warn("skipped bean", zap.Int("entry", i), zap.String("name", b.Name), zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	logger.Info("import complete", zap.Int("imported", imported), zap.Int("skipped", skipped))
	return nil
}

// importBean creates the bean and its lots. A bean whose lots fail is
// removed again so that a skipped entry leaves nothing behind.
func importBean(a *app, userID uint, b BeanImport) error {
	bean, err := a.beans.Create(userID, services.BeanInput{
		Name:          b.Name,
		Origin:        b.Origin,
		RoastLevel:    b.RoastLevel,
		ProcessMethod: b.ProcessMethod,
		Varietal:      b.Varietal,
		Description:   b.Description,
		Supplier:      b.Supplier,
		BuyingDate:    b.BuyingDate,
		BuyingPlace:   b.BuyingPlace,
		BuyingPrice:   b.BuyingPrice,
		Currency:      b.Currency,
		AmountGrams:   b.AmountGrams,
		RoastDate:     b.RoastDate,
		BestByDate:    b.BestByDate,
	})
	if err != nil {
		return err
	}

	for _, l := range b.Lots {
		quantity := l.QuantityGrams
		_, err := a.inventory.Create(userID, services.LotInput{
			CoffeeBeanID:    bean.ID,
			QuantityGrams:   &quantity,
			PurchaseDate:    l.PurchaseDate,
			ExpiryDate:      l.ExpiryDate,
			StorageLocation: l.StorageLocation,
		})
		if err != nil {
			if delErr := a.beans.Delete(userID, bean.ID); delErr != nil {
				logger.Error("failed to roll back bean", zap.Uint("bean_id", bean.ID), zap.Error(delErr))
			}
			return fmt.Errorf("lot: %w", err)
		}
	}

	logger.Debug("imported bean", zap.Uint("bean_id", bean.ID), zap.String("name", bean.Name), zap.Int("lots", len(b.Lots)))
	return nil
}
