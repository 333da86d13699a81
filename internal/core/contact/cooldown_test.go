// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis answers SetNX and Del like a single Redis node without TTL expiry.
type fakeRedis struct {
	keys    map[string]time.Duration
	failure error
}

func (fake *fakeRedis) SetNX(_ context.Context, key string, _ any, expiration time.Duration) *redis.BoolCmd {
	if fake.failure != nil {
		return redis.NewBoolResult(false, fake.failure)
	}
	if _, exists := fake.keys[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	fake.keys[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (fake *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, exists := fake.keys[key]; exists {
			delete(fake.keys, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func TestRedisCooldown(t *testing.T) {
	fake := &fakeRedis{keys: make(map[string]time.Duration)}
	cooldown := &RedisCooldown{client: fake}
	ctx := context.Background()

	acquired, err := cooldown.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.Equal(t, time.Minute, fake.keys["k"])

	acquired, err = cooldown.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, cooldown.Release(ctx, "k"))
	acquired, err = cooldown.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRedisCooldown_Failure(t *testing.T) {
	fake := &fakeRedis{keys: make(map[string]time.Duration), failure: errors.New("i/o timeout")}
	cooldown := &RedisCooldown{client: fake}

	_, err := cooldown.Acquire(context.Background(), "k", time.Minute)
	assert.EqualError(t, err, "i/o timeout")
}

func TestNoCooldown(t *testing.T) {
	for n := 0; n < 3; n++ {
		acquired, err := NoCooldown{}.Acquire(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	}
}
