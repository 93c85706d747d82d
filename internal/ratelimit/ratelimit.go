// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package ratelimit provides per-client sliding-window rate limiting backed
// by Redis. The limiter is an injected collaborator: handlers consult it
// before doing work, and when no backing store is configured the gate is a
// no-op — availability wins over strictness in unconfigured environments.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result is the outcome of a limiter check. RetryAfter is meaningful only
// when Allowed is false; it is always at least one second.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Check(ctx context.Context, key string) (Result, error)
}

// Noop allows everything. Used when no Redis backing store is configured.
type Noop struct{}

// Check always allows.
func (Noop) Check(ctx context.Context, key string) (Result, error) {
	return Result{Allowed: true}, nil
}

const keyPrefix = "ratelimit:"

// Redis implements a sliding-window limiter over a Redis sorted set per
// client: request timestamps are members scored by nanosecond time, expired
// members are trimmed on every check, and the window is full once the
// remaining cardinality reaches the limit.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedis creates a limiter allowing limit requests per window.
func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{client: client, limit: limit, window: window}
}

// Connect creates a Redis client for the limiter backing store and verifies
// it with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Info("rate limiter store connected", "addr", addr)
	return client, nil
}

// Check trims expired entries, counts the window, and either denies with a
// retry hint or records this request.
func (r *Redis) Check(ctx context.Context, key string) (Result, error) {
	now := time.Now()
	cutoff := now.Add(-r.window)
	redisKey := keyPrefix + key

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(cutoff.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, redisKey)
	oldestCmd := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("ratelimit check %s: %w", key, err)
	}

	if countCmd.Val() >= int64(r.limit) {
		retry := r.window
		if oldest := oldestCmd.Val(); len(oldest) > 0 {
			oldestAt := time.Unix(0, int64(oldest[0].Score))
			retry = RetryAfter(oldestAt, now, r.window)
		}
		return Result{Allowed: false, RetryAfter: retry}, nil
	}

	pipe = r.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	pipe.Expire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("ratelimit record %s: %w", key, err)
	}

	return Result{Allowed: true}, nil
}

// RetryAfter computes how long a denied client should wait: the moment the
// oldest request in the window slides out, floored at one second.
func RetryAfter(oldest, now time.Time, window time.Duration) time.Duration {
	retry := oldest.Add(window).Sub(now)
	if retry < time.Second {
		retry = time.Second
	}
	return retry
}
