package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

type CatalogService struct {
	Repo   *repo.GormRepo
	Cache  CatalogCache
	Events EventPublisher
}

// List returns every product ordered by id. The cache is best effort: any
// cache error falls through to the database.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.list")

	if s.Cache != nil {
		items, ok, err := s.Cache.Products(ctx)
		if err != nil {
			l.Warn("cache_get_error", "error", err)
		} else if ok {
			return items, nil
		}
	}

	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetProducts(ctx, items); err != nil {
			l.Warn("cache_set_error", "error", err)
		}
	}
	return items, nil
}

func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountProducts(ctx)
}

func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	prod, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		l.Error("create_product_error", "status", 500, "error", err)
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			l.Warn("cache_invalidate_error", "error", err)
		}
	}

	publish(ctx, s.Events, strconv.FormatUint(uint64(created.ID), 10), mykafka.NewEvent(mykafka.EventProductCreated, map[string]any{
		"productId": created.ID,
		"name":      created.Name,
		"price":     created.Price,
		"category":  created.Category,
	}))
	l.Info("create_product_successful", "product_id", created.ID)
	return created, nil
}

func productFromRequest(req transport.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" || !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: name, positive price and category required", ErrValidation)
	}

	prod := &models.Product{
		Name:        name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		Category:    category,
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if req.Rating != nil {
		prod.Rating = RoundRating(*req.Rating)
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
		}
		prod.Stock = *req.Stock
	}
	return prod, nil
}

// RoundRating clamps r to [0, 5] and rounds it to the nearest half star.
func RoundRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return math.Round(r*2) / 2
}
