package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BrewingLogEntry struct {
	gorm.Model
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	CoffeeBeanID uint           `gorm:"not null;index" json:"coffee_bean_id"`
	CoffeeBean   CoffeeBean     `gorm:"foreignKey:CoffeeBeanID" json:"-"`
	BrewDate     datatypes.Date `gorm:"not null;index" json:"brew_date"`
	BrewMethod   string         `gorm:"index" json:"brew_method"`
	GramsUsed    float64        `gorm:"not null" json:"grams_used"`
	CupsMade     int            `gorm:"not null" json:"cups_made"`
	Notes        string         `gorm:"type:text" json:"notes"`
}

func (BrewingLogEntry) TableName() string {
	return "brewing_logs"
}
