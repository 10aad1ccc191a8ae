// Package seed rebuilds the database with a demo account and the furniture
// catalog.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	"github.com/Skotchmaster/furniture_store/internal/service"
	pkg_hash "github.com/Skotchmaster/furniture_store/pkg/hash"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

const (
	DemoName     = "Test User"
	DemoEmail    = "test@example.com"
	DemoPassword = "test1234"
)

type Result struct {
	UserID   uint
	Products int
}

// Run drops and recreates every table. Existing data is lost.
func Run(ctx context.Context, db *gorm.DB) (*Result, error) {
	l := logging.FromContext(ctx).With("svc", "seed")
	r := repo.New(db)

	if err := r.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset schema: %w", err)
	}
	l.Info("database synced")

	pwHash, err := pkg_hash.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	user := &models.User{Name: DemoName, Email: DemoEmail, PasswordHash: pwHash}
	if err := r.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	l.Info("demo user created", "email", DemoEmail)

	prods := Products()
	if err := r.CreateProducts(ctx, prods); err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}
	l.Info("products seeded", "count", len(prods))

	return &Result{UserID: user.ID, Products: len(prods)}, nil
}

func Products() []models.Product {
	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, models.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       decimal.NewFromInt(p.Price),
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			Rating:      service.RoundRating(p.Rating),
			Stock:       p.Stock,
		})
	}
	return out
}
