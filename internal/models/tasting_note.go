package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TastingNote records one tasting. WaterTemp is always Fahrenheit.
type TastingNote struct {
	gorm.Model
	UserID           uint           `gorm:"not null;index" json:"user_id"`
	CoffeeBeanID     uint           `gorm:"not null;index" json:"coffee_bean_id"`
	CoffeeBean       CoffeeBean     `gorm:"foreignKey:CoffeeBeanID" json:"-"`
	BrewMethod       string         `json:"brew_method"`
	GrindSize        string         `json:"grind_size"`
	WaterTemp        *float64       `json:"water_temp"`
	BrewTime         *int           `json:"brew_time"`
	AromaRating      *int           `json:"aroma_rating"`
	AcidityRating    *int           `json:"acidity_rating"`
	BodyRating       *int           `json:"body_rating"`
	FlavorRating     *int           `json:"flavor_rating"`
	AftertasteRating *int           `json:"aftertaste_rating"`
	OverallRating    int            `gorm:"not null" json:"overall_rating"`
	Notes            string         `gorm:"type:text" json:"notes"`
	TastingDate      datatypes.Date `gorm:"not null;index" json:"tasting_date"`
}
