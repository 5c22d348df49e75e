package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes bearer tokens on logout. Entries expire together
// with the token itself, so the set stays small. A nil blacklist is a no-op
// and keeps logout purely stateless.
type TokenBlacklist struct {
	redis *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{redis: client}
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token_blacklist:" + hex.EncodeToString(sum[:])
}

func (b *TokenBlacklist) Add(ctx context.Context, token string, expiresAt time.Time) error {
	if b == nil || b.redis == nil || token == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.redis.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (b *TokenBlacklist) Contains(ctx context.Context, token string) bool {
	if b == nil || b.redis == nil || token == "" {
		return false
	}
	n, err := b.redis.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
