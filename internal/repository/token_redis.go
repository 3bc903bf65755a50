package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RedisTokenStore keeps refresh tokens in Redis with a TTL equal to
// the token lifetime, so expiry needs no sweeper.  Keys are
// "refresh:<sha256 hash>" and the value is the owning user id.
type RedisTokenStore struct {
	rdb *redis.Client
}

// NewRedisTokenStore wraps an already-connected Redis client.
func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, refreshKeyPrefix+tokenHash, userID, ttl).Err()
}

func (s *RedisTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.rdb.Get(ctx, refreshKeyPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenHash string) error {
	return s.rdb.Del(ctx, refreshKeyPrefix+tokenHash).Err()
}
