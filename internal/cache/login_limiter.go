package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// loginAttemptPrefix is the prefix for failed-login counter keys
	loginAttemptPrefix = "login:attempts:"
)

// LoginLimiter throttles failed logins per username+IP pair using a Redis
// counter with a rolling expiry window.
type LoginLimiter struct {
	max    int
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing max failures inside the window
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{max: max, window: window}
}

func attemptKey(username, ip string) string {
	return fmt.Sprintf("%s%s:%s", loginAttemptPrefix, username, ip)
}

// Allow reports whether another login attempt may proceed
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) (bool, error) {
	if RedisClient == nil {
		return false, fmt.Errorf("redis client not initialized")
	}

	count, err := RedisClient.Get(ctx, attemptKey(username, ip)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// No recorded failures
			return true, nil
		}
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}

	return count < l.max, nil
}

// RecordFailure bumps the failure counter and starts the window on the
// first failure
func (l *LoginLimiter) RecordFailure(ctx context.Context, username, ip string) error {
	if RedisClient == nil {
		return fmt.Errorf("redis client not initialized")
	}

	key := attemptKey(username, ip)
	count, err := RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	if count == 1 {
		if err := RedisClient.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return nil
}

// Reset clears the failure counter after a successful login
func (l *LoginLimiter) Reset(ctx context.Context, username, ip string) error {
	if RedisClient == nil {
		return fmt.Errorf("redis client not initialized")
	}

	return RedisClient.Del(ctx, attemptKey(username, ip)).Err()
}
