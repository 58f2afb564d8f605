package cache

import (
	"context"
	"testing"
	"time"

	"trivia-backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCategoryCacheUnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewCategoryCache(client, time.Minute, zap.NewNop())

	c.Set(context.Background(), []models.Category{{ID: 1, Type: "Science"}})
	categories, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Nil(t, categories)
}

func TestCategoryCacheRoundTrip(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})
	defer client.Close()
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	ctx := context.Background()
	c := NewCategoryCache(client, time.Minute, zap.NewNop())
	require.NoError(t, c.Invalidate(ctx))

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	want := []models.Category{{ID: 2, Type: "Art"}, {ID: 1, Type: "Science"}}
	c.Set(ctx, want)
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, categoriesKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx))
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}
