package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap-in/skillswap-server/internal/logger"
)

// LoginAttemptRepository counts login attempts per caller in a fixed
// window using Redis. The first attempt in a window starts the TTL;
// subsequent attempts share it.
type LoginAttemptRepository struct {
	client *redis.Client
	window time.Duration
}

// NewLoginAttemptRepository creates a repository with the given window.
func NewLoginAttemptRepository(client *redis.Client, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		window: window,
	}
}

// Increment records one attempt for the caller key and returns the
// attempt count within the current window and the time remaining
// until the window resets.
func (r *LoginAttemptRepository) Increment(ctx context.Context, callerKey string) (int64, time.Duration, error) {
	key := fmt.Sprintf("login_attempts:%s", callerKey)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("failed to increment login attempts", "key", key, "error", err)
		return 0, 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.Log.Errorw("failed to set login attempt window", "key", key, "error", err)
			return count, r.window, err
		}
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = r.window
	}

	logger.Log.Debugw("login attempt recorded", "key", key, "count", count, "ttl", ttl)

	return count, ttl, nil
}
