package tasks

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

const (
	countsKeyPrefix = "projects:taskcounts:" // Cached counts per project: projects:taskcounts:{code}
	defaultTTL      = 30 * time.Second
)

// Gateway is the surface the cache wraps; *Client satisfies it.
type Gateway interface {
	Counts(ctx context.Context, projectCode string) (domain.TaskCounts, error)
	CompleteAll(ctx context.Context, projectCode string) error
	DeleteAll(ctx context.Context, projectCode string) error
}

// CachedGateway serves task counts through a short-lived Redis cache.
// Cascades pass straight through and drop the cached entry, since both
// change the remote counts.
type CachedGateway struct {
	inner Gateway
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedGateway wraps a gateway with a Redis read-through cache.
// A zero ttl means the 30s default.
func NewCachedGateway(inner Gateway, rdb *redis.Client, ttl time.Duration) *CachedGateway {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &CachedGateway{inner: inner, rdb: rdb, ttl: ttl}
}

func (g *CachedGateway) Counts(ctx context.Context, projectCode string) (domain.TaskCounts, error) {
	key := countsKeyPrefix + projectCode

	if data, err := g.rdb.Get(ctx, key).Result(); err == nil {
		var counts domain.TaskCounts
		if err := json.Unmarshal([]byte(data), &counts); err == nil {
			return counts, nil
		}
		// Unreadable entry, fall through to the remote call.
	} else if err != redis.Nil {
		log.Printf("[tasks] counts cache read failed for %s: %v", projectCode, err)
	}

	counts, err := g.inner.Counts(ctx, projectCode)
	if err != nil {
		return domain.TaskCounts{}, err
	}

	if data, err := json.Marshal(counts); err == nil {
		if err := g.rdb.Set(ctx, key, data, g.ttl).Err(); err != nil {
			log.Printf("[tasks] counts cache write failed for %s: %v", projectCode, err)
		}
	}

	return counts, nil
}

func (g *CachedGateway) CompleteAll(ctx context.Context, projectCode string) error {
	if err := g.inner.CompleteAll(ctx, projectCode); err != nil {
		return err
	}
	g.invalidate(ctx, projectCode)
	return nil
}

func (g *CachedGateway) DeleteAll(ctx context.Context, projectCode string) error {
	if err := g.inner.DeleteAll(ctx, projectCode); err != nil {
		return err
	}
	g.invalidate(ctx, projectCode)
	return nil
}

func (g *CachedGateway) invalidate(ctx context.Context, projectCode string) {
	if err := g.rdb.Del(ctx, countsKeyPrefix+projectCode).Err(); err != nil {
		log.Printf("[tasks] counts cache invalidation failed for %s: %v", projectCode, err)
	}
}
