package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewRedisCatalog_DefaultTTL(t *testing.T) {
	c := NewRedisCatalog(unreachable(t), 0)
	assert.Equal(t, defaultCacheTTL, c.ttl)

	c = NewRedisCatalog(unreachable(t), time.Minute)
	assert.Equal(t, time.Minute, c.ttl)
}

func TestRedisCatalog_UnreachableSurfacesErrors(t *testing.T) {
	c := NewRedisCatalog(unreachable(t), time.Minute)
	ctx := context.Background()

	items, ok, err := c.Products(ctx)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, items)

	require.Error(t, c.SetProducts(ctx, nil))
	require.Error(t, c.Invalidate(ctx))
}
