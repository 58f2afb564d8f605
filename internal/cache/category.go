package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trivia-backend/internal/metrics"
	"trivia-backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const categoriesKey = "trivia:categories"

// CategoryCache keeps the ordered category list in redis. Failures are
// logged and reported as misses so the database stays the source of truth.
type CategoryCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	log    *zap.Logger
}

func NewCategoryCache(client redis.UniversalClient, ttl time.Duration, log *zap.Logger) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl, log: log}
}

func (c *CategoryCache) Get(ctx context.Context) ([]models.Category, bool) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CategoryCacheLookups.WithLabelValues("miss").Inc()
		} else {
			metrics.CategoryCacheLookups.WithLabelValues("error").Inc()
			c.log.Warn("category cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		metrics.CategoryCacheLookups.WithLabelValues("error").Inc()
		c.log.Warn("category cache entry corrupt", zap.Error(err))
		return nil, false
	}
	metrics.CategoryCacheLookups.WithLabelValues("hit").Inc()
	return categories, true
}

func (c *CategoryCache) Set(ctx context.Context, categories []models.Category) {
	raw, err := json.Marshal(categories)
	if err != nil {
		c.log.Warn("category cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, categoriesKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("category cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list, used after the category table is reseeded.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoriesKey).Err()
}
