package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit locks an action for the given duration. Returns true
// when the action is allowed. A nil client disables limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, key, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)

	wasSet, err := rdb.SetNX(ctx, redisKey, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func ClearRateLimit(ctx context.Context, rdb *redis.Client, key, action string) error {
	if rdb == nil {
		return nil
	}
	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)
	_, err := rdb.Del(ctx, redisKey).Result()
	return err
}
