package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InventoryLot struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	CoffeeBeanID    uint            `gorm:"not null;index" json:"coffee_bean_id"`
	CoffeeBean      CoffeeBean      `gorm:"foreignKey:CoffeeBeanID" json:"-"`
	QuantityGrams   float64         `gorm:"not null" json:"quantity_grams"`
	PurchaseDate    *datatypes.Date `json:"purchase_date"`
	RoastDate       *datatypes.Date `json:"roast_date"`
	ExpiryDate      *datatypes.Date `json:"expiry_date"`
	StorageLocation string          `json:"storage_location"`
	Notes           string          `gorm:"type:text" json:"notes"`
}
