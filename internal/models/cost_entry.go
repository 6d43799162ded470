package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CostEntry is a single purchase. Currency is copied from the bean so that
// rollups can group by it.
type CostEntry struct {
	gorm.Model
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	CoffeeBeanID  uint            `gorm:"not null;index" json:"coffee_bean_id"`
	CoffeeBean    CoffeeBean      `gorm:"foreignKey:CoffeeBeanID" json:"-"`
	PurchaseDate  datatypes.Date  `gorm:"not null;index" json:"purchase_date"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	QuantityGrams float64         `gorm:"not null" json:"quantity_grams"`
	CostPerGram   decimal.Decimal `gorm:"type:numeric;not null" json:"cost_per_gram"`
	Currency      Currency        `gorm:"size:3;not null" json:"currency"`
	Notes         string          `gorm:"type:text" json:"notes"`
}
