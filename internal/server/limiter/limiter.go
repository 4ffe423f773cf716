// Package limiter counts OTP attempts per login in Redis and refuses further
// checks once the budget is spent, until the cooldown expires.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "authbridge:otp:fail:"

// reserveLua counts one attempt and returns the new count. The cooldown
// starts with the first attempt of a window.
//
//	KEYS[1] counter key
//	ARGV[1] cooldown in milliseconds
var reserveLua = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// releaseLua hands back one attempt, dropping the key when nothing is left.
var releaseLua = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
local n = redis.call('DECR', KEYS[1])
if n <= 0 then
  redis.call('DEL', KEYS[1])
end
return n
`)

// AttemptLimiter is safe to use as a nil pointer, in which case it never
// limits.
type AttemptLimiter struct {
	redis       *redis.Client
	maxAttempts int64
	cooldown    time.Duration
}

func NewAttemptLimiter(client *redis.Client, maxAttempts int, cooldown time.Duration) *AttemptLimiter {
	return &AttemptLimiter{redis: client, maxAttempts: int64(maxAttempts), cooldown: cooldown}
}

func (l *AttemptLimiter) key(login string) string {
	return keyPrefix + login
}

// Reserve takes one attempt from the budget of login before the code is
// checked. The count and the comparison happen in one script, so concurrent
// callers can never get more than maxAttempts through. It returns
// common.ErrRateLimited when the budget is spent.
func (l *AttemptLimiter) Reserve(ctx context.Context, login string) error {
	if l == nil {
		return nil
	}
	count, err := reserveLua.Run(ctx, l.redis, []string{l.key(login)}, l.cooldown.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("limiter reserve: %w", err)
	}
	if count > l.maxAttempts {
		return common.ErrRateLimited
	}
	return nil
}

// Release returns an attempt taken by Reserve whose check never reached a
// verdict.
func (l *AttemptLimiter) Release(ctx context.Context, login string) error {
	if l == nil {
		return nil
	}
	if err := releaseLua.Run(ctx, l.redis, []string{l.key(login)}).Err(); err != nil {
		return fmt.Errorf("limiter release: %w", err)
	}
	return nil
}

// Reset forgets the attempts of login.
func (l *AttemptLimiter) Reset(ctx context.Context, login string) error {
	if l == nil {
		return nil
	}
	if err := l.redis.Del(ctx, l.key(login)).Err(); err != nil {
		return fmt.Errorf("limiter reset: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection at start-up.
func (l *AttemptLimiter) Ping(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.redis.Ping(ctx).Err()
}
