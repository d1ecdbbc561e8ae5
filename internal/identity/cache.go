package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Hebelub/train-booker/internal/domain"
	"github.com/Hebelub/train-booker/internal/service/ports"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// CachedProvider puts a Redis read-through cache in front of a profile
// provider. A cache outage degrades to direct lookups, never to errors.
type CachedProvider struct {
	inner ports.IdentityProvider
	rdb   *redis.Client
	ttl   time.Duration
	log   logger.Logger
}

func NewCachedProvider(inner ports.IdentityProvider, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedProvider {
	return &CachedProvider{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func (c *CachedProvider) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	key := cacheKey(userID)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var p domain.Profile
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("profile cache read failed",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}

	p, err := c.inner.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("profile cache write failed",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
	}

	return p, nil
}

func (c *CachedProvider) GetProfiles(ctx context.Context, userIDs []string) ([]*domain.Profile, error) {
	profiles := make([]*domain.Profile, 0, len(userIDs))
	for _, id := range userIDs {
		p, err := c.GetProfile(ctx, id)
		if err != nil {
			c.log.Warn("profile lookup failed, entry omitted",
				logger.String("user_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

func cacheKey(userID string) string {
	return "profile:" + userID
}
