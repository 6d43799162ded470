package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// NewDate keeps the calendar date of t, normalised to midnight UTC.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate accepts "YYYY-MM-DD" or a full RFC 3339 timestamp. An empty string
// yields nil.
func ParseDate(value string) (*datatypes.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", value)
		}
	}
	d := NewDate(t)
	return &d, nil
}

// TimeOf converts a nullable column value into a UTC midnight time.
func TimeOf(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(NewDate(time.Time(*d)))
	return &t
}

// FormatDate renders a nullable date, empty when absent.
func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(DateLayout)
}
