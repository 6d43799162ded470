package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func (e *ValidationError) date(field, value string) *datatypes.Date {
	d, err := models.ParseDate(value)
	if err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return d
}

func (e *ValidationError) requiredDate(field, value string) *datatypes.Date {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
		return nil
	}
	return e.date(field, value)
}

func (e *ValidationError) rating(field string, value *int) {
	if value != nil && (*value < 1 || *value > 10) {
		e.Add(field, "must be between 1 and 10")
	}
}

func (e *ValidationError) roastLevel(value string) models.RoastLevel {
	if value == "" {
		return ""
	}
	for _, level := range models.RoastLevels {
		if string(level) == value {
			return level
		}
	}
	e.Add("roast_level", "must be one of Light, Medium, Medium-Dark, Dark")
	return ""
}

func (e *ValidationError) currency(value string) models.Currency {
	if value == "" {
		return models.CurrencyUSD
	}
	for _, c := range models.Currencies {
		if string(c) == value {
			return c
		}
	}
	e.Add("currency", "must be one of USD, HKD, JPY")
	return ""
}

func (e *ValidationError) clockTime(field, value string) {
	if value != "" && !clockPattern.MatchString(value) {
		e.Add(field, "must be a time in HH:MM format")
	}
}

func (e *ValidationError) beanID(value uint) {
	if value == 0 {
		e.Add("coffee_bean_id", "is required")
	}
}

func money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (e *ValidationError) status(value string) models.ScheduleStatus {
	switch s := models.ScheduleStatus(value); s {
	case "", models.StatusPlanned, models.StatusCompleted, models.StatusCancelled, models.StatusSkipped:
		return s
	}
	e.Add("status", "must be one of planned, completed, cancelled, skipped")
	return ""
}
