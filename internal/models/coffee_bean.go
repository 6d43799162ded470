package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoastLevel string

const (
	RoastLight      RoastLevel = "Light"
	RoastMedium     RoastLevel = "Medium"
	RoastMediumDark RoastLevel = "Medium-Dark"
	RoastDark       RoastLevel = "Dark"
)

var RoastLevels = []RoastLevel{RoastLight, RoastMedium, RoastMediumDark, RoastDark}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyHKD Currency = "HKD"
	CurrencyJPY Currency = "JPY"
)

var Currencies = []Currency{CurrencyUSD, CurrencyHKD, CurrencyJPY}

// CoffeeBean is a coffee product owned by a user. PricePerGram, TotalCost,
// CupsBrewed and CostPerCup are derived and rewritten by the services on every
// relevant write.
type CoffeeBean struct {
	gorm.Model
	UserID        uint                `gorm:"not null;index" json:"user_id"`
	User          User                `gorm:"foreignKey:UserID" json:"-"`
	Name          string              `gorm:"not null" json:"name"`
	Origin        string              `gorm:"index" json:"origin"`
	RoastLevel    RoastLevel          `gorm:"size:16;index" json:"roast_level"`
	ProcessMethod string              `json:"process_method"`
	Altitude      string              `json:"altitude"`
	Varietal      string              `json:"varietal"`
	Description   string              `gorm:"type:text" json:"description"`
	Supplier      string              `json:"supplier"`
	PhotoURL      string              `json:"photo_url"`
	BuyingDate    *datatypes.Date     `json:"buying_date"`
	BuyingPlace   string              `json:"buying_place"`
	BuyingPrice   decimal.NullDecimal `gorm:"type:numeric" json:"buying_price"`
	Currency      Currency            `gorm:"size:3;not null" json:"currency"`
	AmountGrams   *float64            `json:"amount_grams"`
	RoastDate     *datatypes.Date     `gorm:"index" json:"roast_date"`
	BestByDate    *datatypes.Date     `gorm:"index" json:"best_by_date"`
	PricePerGram  decimal.Decimal     `gorm:"type:numeric;not null" json:"price_per_gram"`
	TotalCost     decimal.Decimal     `gorm:"type:numeric;not null" json:"total_cost"`
	CupsBrewed    int                 `gorm:"not null" json:"cups_brewed"`
	CostPerCup    decimal.Decimal     `gorm:"type:numeric;not null" json:"cost_per_cup"`

	InventoryLots []InventoryLot         `gorm:"foreignKey:CoffeeBeanID;constraint:OnDelete:CASCADE" json:"-"`
	TastingNotes  []TastingNote          `gorm:"foreignKey:CoffeeBeanID;constraint:OnDelete:CASCADE" json:"-"`
	Schedule      []BrewingScheduleEntry `gorm:"foreignKey:CoffeeBeanID;constraint:OnDelete:CASCADE" json:"-"`
	CostEntries   []CostEntry            `gorm:"foreignKey:CoffeeBeanID;constraint:OnDelete:CASCADE" json:"-"`
	BrewingLogs   []BrewingLogEntry      `gorm:"foreignKey:CoffeeBeanID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeanSummary is a bean annotated with aggregates from its child tables.
type BeanSummary struct {
	CoffeeBean
	TotalInventory float64
	LotCount       int64
	TastingCount   int64
	AvgRating      *float64
}
