package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"seungpyo.lee/PeakTrack/internal/domain"
)

type blacklistedTokenRepository struct {
	db *gorm.DB
}

// NewBlacklistedTokenRepository creates the Postgres backed token denylist.
func NewBlacklistedTokenRepository(db *gorm.DB) domain.BlacklistedTokenRepository {
	return &blacklistedTokenRepository{db: db}
}

func (r *blacklistedTokenRepository) Add(token string, expiresAt time.Time) error {
	record := domain.BlacklistedToken{Token: token, ExpiryDate: expiresAt}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *blacklistedTokenRepository) Contains(token string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.BlacklistedToken{}).Where("token = ?", token).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up blacklisted token: %w", err)
	}
	return count > 0, nil
}

// DeleteExpired purges rows whose expiry is before now and reports how many were removed.
func (r *blacklistedTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expiry_date < ?", now).Delete(&domain.BlacklistedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge blacklisted tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
