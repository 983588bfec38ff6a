// Package cache keeps per-resource version tokens in Redis so collection reads can be
// answered with 304 Not Modified until the next write.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ETags hands out and invalidates collection version tokens.
type ETags interface {
	// Current returns the version token of resource, minting one if none exists.
	Current(ctx context.Context, resource string) (string, error)
	// Invalidate drops the tokens of the given resources.
	Invalidate(ctx context.Context, resources ...string) error
}

// NewClient builds a go-redis client for the configured address.
func NewClient(address, username, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
}

// RedisETags stores tokens under “cms:<resource>:etag”.
type RedisETags struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ ETags = (*RedisETags)(nil)

// NewRedisETags returns an ETags backed by rdb; tokens expire after ttl (0 keeps them forever).
func NewRedisETags(rdb *redis.Client, ttl time.Duration) *RedisETags {
	return &RedisETags{rdb: rdb, ttl: ttl}
}

// Key is the Redis key holding the version token of resource.
func Key(resource string) string {
	return fmt.Sprintf("cms:%s:etag", resource)
}

func (r *RedisETags) Current(ctx context.Context, resource string) (string, error) {
	key := Key(resource)
	token := uuid.NewString()

	created, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if created {
		return token, nil
	}

	existing, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; the fresh token is never served twice
		return token, nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return existing, nil
}

func (r *RedisETags) Invalidate(ctx context.Context, resources ...string) error {
	if len(resources) == 0 {
		return nil
	}
	keys := make([]string, len(resources))
	for i, res := range resources {
		keys[i] = Key(res)
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Strs("etag_keys", keys).Msg("failed to invalidate collection ETag cache")
		return err
	}
	log.Debug().Strs("etag_keys", keys).Msg("invalidated collection ETag cache")
	return nil
}

// Format builds the weak ETag header value for a collection read of token with rawQuery.
func Format(token, rawQuery string) string {
	sum := sha256.Sum256([]byte(rawQuery))
	return fmt.Sprintf(`W/"%s-%s"`, token, hex.EncodeToString(sum[:6]))
}
