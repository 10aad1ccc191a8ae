package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Skotchmaster/furniture_store/internal/models"
)

const (
	productsKey     = "catalog:products"
	defaultCacheTTL = 5 * time.Minute
)

type RedisCatalog struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalog(client *redis.Client, ttl time.Duration) *RedisCatalog {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCatalog{client: client, ttl: ttl}
}

func NewClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// Products returns the cached listing. ok is false on a miss.
func (c *RedisCatalog) Products(ctx context.Context) ([]models.Product, bool, error) {
	data, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []models.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RedisCatalog) SetProducts(ctx context.Context, items []models.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productsKey, data, c.ttl).Err()
}

func (c *RedisCatalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productsKey).Err()
}
