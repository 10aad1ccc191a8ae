package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/furniture_store/internal/models"
)

var ErrUnknownProduct = errors.New("unknown product")

// PlaceOrder runs build inside one transaction. build receives the current
// prices of the requested products and returns the order to persist; the
// header and its items are then written with the same transaction handle.
func (r *GormRepo) PlaceOrder(ctx context.Context, productIDs []uint, build func(prices map[uint]models.Product) (*models.Order, error)) (*models.Order, error) {
	var placed *models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prods []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&prods).Error; err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		byID := make(map[uint]models.Product, len(prods))
		for _, p := range prods {
			byID[p.ID] = p
		}
		for _, id := range productIDs {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("%w: %d", ErrUnknownProduct, id)
			}
		}

		order, err := build(byID)
		if err != nil {
			return err
		}

		items := order.Items
		order.Items = nil
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}
		order.Items = items

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
