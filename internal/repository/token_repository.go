package repository

import (
	"time"

	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(token *models.APIToken) error {
	return r.db.Create(token).Error
}

// FindByToken returns the stored token with its user, or nil when it is
// unknown, revoked or expired at now.
func (r *TokenRepository) FindByToken(tokenStr string, now time.Time) (*models.APIToken, error) {
	var token models.APIToken
	return firstOrNil(r.db.Where("token = ? AND expires_at > ?", tokenStr, now).Preload("User"), &token)
}

func (r *TokenRepository) FindByUserID(userID uint) ([]models.APIToken, error) {
	var tokens []models.APIToken
	err := r.db.Scopes(ownedBy(userID)).
		Order("created_at DESC").
		Find(&tokens).Error
	return tokens, err
}

// Delete revokes one token and reports whether a row was removed.
func (r *TokenRepository) Delete(id uint, userID uint) (bool, error) {
	res := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.APIToken{})
	return res.RowsAffected > 0, res.Error
}

func (r *TokenRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&models.APIToken{})
	return res.RowsAffected, res.Error
}
