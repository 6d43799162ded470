package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScheduleStatus string

const (
	StatusPlanned   ScheduleStatus = "planned"
	StatusCompleted ScheduleStatus = "completed"
	StatusCancelled ScheduleStatus = "cancelled"
	StatusSkipped   ScheduleStatus = "skipped"
)

type BrewingScheduleEntry struct {
	gorm.Model
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	CoffeeBeanID  uint           `gorm:"not null;index" json:"coffee_bean_id"`
	CoffeeBean    CoffeeBean     `gorm:"foreignKey:CoffeeBeanID" json:"-"`
	ScheduledDate datatypes.Date `gorm:"not null;index" json:"scheduled_date"`
	ScheduledTime string         `gorm:"size:5" json:"scheduled_time"`
	BrewMethod    string         `json:"brew_method"`
	GrindSize     string         `json:"grind_size"`
	WaterTemp     *int           `json:"water_temp"`
	BrewTime      *int           `json:"brew_time"`
	Notes         string         `gorm:"type:text" json:"notes"`
	Status        ScheduleStatus `gorm:"size:16;not null;index" json:"status"`
	CompletedAt   *time.Time     `json:"completed_at"`
}

func (BrewingScheduleEntry) TableName() string {
	return "brewing_schedules"
}
