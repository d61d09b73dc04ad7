package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleKey = "refresh:last"

// RefreshThrottle rate-limits manual refreshes across all dashboard
// instances so operator refresh-mashing cannot hammer the export host.
// A refresh is allowed when the throttle key could be set; the key expires
// after the configured minimum interval.
type RefreshThrottle struct {
	client   *redis.Client
	interval time.Duration
}

// NewRefreshThrottle creates a RefreshThrottle wrapping the given Redis
// client. interval is the minimum time between two allowed refreshes.
func NewRefreshThrottle(client *redis.Client, interval time.Duration) *RefreshThrottle {
	return &RefreshThrottle{client: client, interval: interval}
}

// Allow reports whether a refresh may run now. It claims the throttle slot
// atomically (SET NX with TTL), so concurrent callers see at most one
// "allowed" per interval.
func (t *RefreshThrottle) Allow(ctx context.Context) (bool, error) {
	if t.interval <= 0 {
		return true, nil
	}
	ok, err := t.client.SetNX(ctx, throttleKey, "1", t.interval).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return ok, nil
}
