package projects

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Zachkp/portfolio/internal/logger"
)

const DefaultCacheKey = "portfolio:projects"

// CachedSource is a read-through Redis cache in front of another Source.
// Redis failures are logged and never block a load; the inner source is the
// authority.
type CachedSource struct {
	client *redis.Client
	next   Source
	key    string
	ttl    time.Duration
	log    *logger.Logger
}

func NewCachedSource(client *redis.Client, next Source, ttl time.Duration, log *logger.Logger) *CachedSource {
	return &CachedSource{
		client: client,
		next:   next,
		key:    DefaultCacheKey,
		ttl:    ttl,
		log:    log,
	}
}

func (c *CachedSource) Load(ctx context.Context) ([]Project, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var list []Project
		jerr := json.Unmarshal(raw, &list)
		if jerr == nil {
			return list, nil
		}
		c.log.Error(jerr, "discarding unreadable cached catalog")
	case errors.Is(err, redis.Nil):
	default:
		c.log.Error(err, "catalog cache read failed")
	}

	list, err := c.next.Load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return list, nil
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		c.log.Error(err, "catalog cache write failed")
	}
	return list, nil
}

// Invalidate drops the cached catalog so the next Load reads through.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
