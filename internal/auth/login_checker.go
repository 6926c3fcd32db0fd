package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// GetLoggedUserID resolves a session token to its user ID, or
// ErrNotLoggedIn when the session is missing or expired.
func (lc *LoginChecker) GetLoggedUserID(ctx context.Context, token string) (int, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	userID, createdAtUnix, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > lc.ttl {
		return 0, ErrNotLoggedIn
	}

	return userID, nil
}
