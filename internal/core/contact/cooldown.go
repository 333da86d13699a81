// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/sanaa/internal/platform/constants"
)

// # Inquiry Cooldown

// Cooldown throttles repeated inquiries from one sender to one artisan.
type Cooldown interface {
	// Acquire claims key for window. It reports false when the key is
	// already held, meaning the sender must wait.
	Acquire(ctx context.Context, key string, window time.Duration) (bool, error)

	// Release frees key early, used when the inquiry could not be stored.
	Release(ctx context.Context, key string) error
}

// CooldownKey derives the cooldown key for a sender and an artisan.
// Email comparison is case-insensitive.
func CooldownKey(artisanID, clientEmail string) string {
	return constants.RedisPrefixContactCooldown + artisanID + ":" + strings.ToLower(strings.TrimSpace(clientEmail))
}

// redisKV is the subset of the go-redis client the cooldown needs.
type redisKV interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCooldown stores cooldown keys in Redis with SET NX and a TTL, so
// expiry needs no cleanup and the limit holds across API replicas.
type RedisCooldown struct {
	client redisKV
}

// NewRedisCooldown returns a cooldown backed by client.
func NewRedisCooldown(client redis.Cmdable) *RedisCooldown {
	return &RedisCooldown{client: client}
}

// Acquire implements [Cooldown].
func (cooldown *RedisCooldown) Acquire(ctx context.Context, key string, window time.Duration) (bool, error) {
	return cooldown.client.SetNX(ctx, key, 1, window).Result()
}

// Release implements [Cooldown].
func (cooldown *RedisCooldown) Release(ctx context.Context, key string) error {
	return cooldown.client.Del(ctx, key).Err()
}

// NoCooldown never throttles. It is used when Redis is not configured.
type NoCooldown struct{}

// Acquire implements [Cooldown].
func (NoCooldown) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }

// Release implements [Cooldown].
func (NoCooldown) Release(context.Context, string) error { return nil }
