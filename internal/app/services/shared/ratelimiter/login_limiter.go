package ratelimiter

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// LoginLimiter throttles credential checks per client address.
// Algorithm: fixed window counter stored in Redis with TTL equal to the
// window duration.
type LoginLimiter struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	maxQuota  int
	windowSec int
}

func NewLoginLimiter(redis contracts.RedisRepository, log *zap.Logger, maxQuota, windowSec int) *LoginLimiter {
	if windowSec <= 0 {
		windowSec = constvars.DefaultLoginAttemptWindowSec
	}
	return &LoginLimiter{
		redis:     redis,
		log:       log,
		maxQuota:  maxQuota,
		windowSec: windowSec,
	}
}

type AllowOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// Allow records one attempt for clientAddr and reports whether it still fits
// the current window. When quota is exhausted RetryAfterSecs counts down to
// the next window boundary. A limiter error fails open.
func (l *LoginLimiter) Allow(ctx context.Context, clientAddr string, now time.Time) (*AllowOutput, error) {
	if l.maxQuota <= 0 {
		return &AllowOutput{Allowed: true}, nil
	}

	windowID := now.Unix() / int64(l.windowSec)
	key := fmt.Sprintf(constvars.RedisKeyLoginAttemptsFormat, clientAddr, windowID)

	ttl := time.Duration(l.windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("LoginLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &AllowOutput{Allowed: true}, nil
	}

	if count > int64(l.maxQuota) {
		nextWindow := (windowID + 1) * int64(l.windowSec)
		return &AllowOutput{
			Allowed:        false,
			RetryAfterSecs: int(nextWindow - now.Unix()),
		}, nil
	}
	return &AllowOutput{Allowed: true}, nil
}
