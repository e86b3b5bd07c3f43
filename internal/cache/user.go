package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/skillfolio/skillfolio/internal/model"
)

const (
	// userCachePrefix is the Redis key prefix for the current-user cache.
	userCachePrefix = "auth:user:"
	// userCacheTTL bounds how stale a cached profile can get. Tokens
	// outlive entries, so the guard falls back to the database at most
	// once per TTL window per user.
	userCacheTTL = 5 * time.Minute
)

func userCacheKey(userID int64) string {
	return userCachePrefix + strconv.FormatInt(userID, 10)
}

// GetUser retrieves a cached user profile by id.
// Returns nil on a cache miss; a corrupted entry is treated as a miss.
func (c *Cache) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	data, err := c.client.Get(ctx, userCacheKey(userID)).Bytes()
	if err != nil {
		return nil, nil //nolint:nilerr
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil //nolint:nilerr
	}

	return &user, nil
}

// SetUser caches a user profile. The password hash carries a `json:"-"`
// tag, so it never reaches Redis.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return c.client.Set(ctx, userCacheKey(user.ID), data, userCacheTTL).Err()
}

// DeleteUser removes a cached user profile.
// Called after a profile update so the guard re-reads the row.
func (c *Cache) DeleteUser(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, userCacheKey(userID)).Err()
}
