package models

import (
	"time"

	"gorm.io/gorm"
)

// APIToken is an issued bearer token. Deleting the row revokes it even if
// the JWT itself has not expired.
type APIToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

func (t *APIToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
