package domain

import "time"

// BlacklistedToken is a revoked token kept until ExpiryDate.
type BlacklistedToken struct {
	Token      string    `gorm:"primaryKey"`
	ExpiryDate time.Time `gorm:"not null;index"`
}

type BlacklistedTokenRepository interface {
	// Add is a no-op for a token that is already present.
	Add(token string, expiresAt time.Time) error
	Contains(token string) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}
