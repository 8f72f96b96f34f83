package jwt

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDenylist keeps revoked tokens in Redis; keys expire together with the token.
type RedisDenylist struct {
	redis *redis.Client
}

// NewRedisDenylist creates a Denylist backed by the given Redis client.
func NewRedisDenylist(redisClient *redis.Client) *RedisDenylist {
	return &RedisDenylist{redis: redisClient}
}

// Add stores the token until it would naturally expire.
func (d *RedisDenylist) Add(token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired
	}
	ctx := context.Background()
	return d.redis.Set(ctx, redisKey(token), "revoked", ttl).Err()
}

// Contains checks if the token is blacklisted in Redis.
func (d *RedisDenylist) Contains(token string) (bool, error) {
	ctx := context.Background()
	res, err := d.redis.Exists(ctx, redisKey(token)).Result()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// redisKey generates a Redis key for a JWT token.
func redisKey(token string) string {
	return "jwt:blacklist:" + token
}
