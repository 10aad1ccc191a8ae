package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/transport"
)

type fakeCache struct {
	items       []models.Product
	hit         bool
	err         error
	sets        int
	invalidated int
}

func (c *fakeCache) Products(context.Context) ([]models.Product, bool, error) {
	return c.items, c.hit, c.err
}

func (c *fakeCache) SetProducts(_ context.Context, items []models.Product) error {
	c.sets++
	c.items, c.hit = items, true
	return c.err
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.items, c.hit = nil, false
	return c.err
}

func ptr[T any](v T) *T { return &v }

func TestCatalogService_Create(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.Catalog.Create(context.Background(), transport.CreateProductRequest{
		Name:     " Ceiling Light ",
		Price:    dec("12499"),
		Category: "Lighting",
		Rating:   ptr(4.2),
		Stock:    ptr(15),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Ceiling Light", p.Name)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, []string{mykafka.EventProductCreated}, env.Events.types())
}

func TestCatalogService_Create_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "no name", req: transport.CreateProductRequest{Price: dec("1"), Category: "X"}},
		{name: "no category", req: transport.CreateProductRequest{Name: "X", Price: dec("1")}},
		{name: "zero price", req: transport.CreateProductRequest{Name: "X", Category: "X"}},
		{name: "negative price", req: transport.CreateProductRequest{Name: "X", Price: dec("-5"), Category: "X"}},
		{name: "negative stock", req: transport.CreateProductRequest{Name: "X", Price: dec("1"), Category: "X", Stock: ptr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := env.Catalog.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, p)
		})
	}
	assert.Zero(t, env.count(t, &models.Product{}))
}

func TestCatalogService_List_ReadThroughCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cache := &fakeCache{}
	env.Catalog.Cache = cache

	env.product(t, "Sofa", "15999")

	items, err := env.Catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, cache.sets)

	// served from cache: the new row is not visible until invalidation
	env.product(t, "Vase", "1299")
	items, err = env.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = env.Catalog.Create(ctx, transport.CreateProductRequest{Name: "Rug", Price: dec("7499"), Category: "Rugs"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	items, err = env.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCatalogService_List_CacheErrorFallsBack(t *testing.T) {
	env := newTestEnv(t)
	env.Catalog.Cache = &fakeCache{err: errors.New("connection refused")}
	env.product(t, "Sofa", "15999")

	items, err := env.Catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRoundRating(t *testing.T) {
	cases := map[float64]float64{
		-1:   0,
		0:    0,
		4.2:  4,
		4.25: 4.5,
		3.74: 3.5,
		5:    5,
		7:    5,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundRating(in), "rating %v", in)
	}
}
