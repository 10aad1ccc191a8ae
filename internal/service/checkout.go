package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/repo"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

type CheckoutService struct {
	Repo    *repo.GormRepo
	Events  EventPublisher
	Metrics OrderObserver
}

// MaxLineQuantity bounds the quantity of one order line after merging.
const MaxLineQuantity = 10000

type line struct {
	productID uint
	quantity  int
	claimed   decimal.Decimal
}

// mergeLines validates the submitted items and folds repeated product ids
// into one line, keeping first-occurrence order.
func mergeLines(items []transport.OrderItemRequest) ([]line, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]line, 0, len(items))
	index := make(map[uint]int, len(items))
	for i, it := range items {
		if it.ProductID == 0 {
			return nil, fmt.Errorf("%w: item %d: productId required", ErrValidation, i)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d: quantity must be > 0", ErrValidation, i)
		}
		if it.Quantity > MaxLineQuantity {
			return nil, fmt.Errorf("%w: item %d: quantity above %d", ErrValidation, i, MaxLineQuantity)
		}
		if j, ok := index[it.ProductID]; ok {
			if lines[j].quantity > MaxLineQuantity-it.Quantity {
				return nil, fmt.Errorf("%w: product %d: quantity above %d", ErrValidation, it.ProductID, MaxLineQuantity)
			}
			lines[j].quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(lines)
		lines = append(lines, line{productID: it.ProductID, quantity: it.Quantity, claimed: it.Price})
	}
	return lines, nil
}

// PlaceOrder turns a submitted cart into one pending order. Prices and the
// total come from the catalog inside the transaction; the client's figures
// are only compared and logged.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "checkout.place_order", "user_id", userID)

	lines, err := mergeLines(req.Items)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(lines))
	for i, ln := range lines {
		ids[i] = ln.productID
	}

	order, err := s.Repo.PlaceOrder(ctx, ids, func(catalog map[uint]models.Product) (*models.Order, error) {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, ln := range lines {
			item := models.OrderItem{
				ProductID: ln.productID,
				Quantity:  ln.quantity,
				Price:     catalog[ln.productID].Price,
			}
			if !ln.claimed.Equal(item.Price) {
				l.Warn("claimed_price_mismatch", "product_id", ln.productID, "claimed", ln.claimed.String(), "catalog", item.Price.String())
			}
			items = append(items, item)
			total = total.Add(item.LineTotal())
		}
		return &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			Items:       items,
		}, nil
	})
	if err != nil {
		if errors.Is(err, repo.ErrUnknownProduct) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		l.Error("place_order_error", "status", 500, "error", err)
		return nil, err
	}

	if !req.TotalAmount.Equal(order.TotalAmount) {
		l.Warn("claimed_total_mismatch", "order_id", order.ID, "claimed", req.TotalAmount.String(), "recorded", order.TotalAmount.String())
	}

	if s.Metrics != nil {
		s.Metrics.ObserveOrder(len(order.Items))
	}
	publish(ctx, s.Events, strconv.FormatUint(uint64(order.ID), 10), mykafka.NewEvent(mykafka.EventOrderPlaced, map[string]any{
		"orderId":     order.ID,
		"userId":      userID,
		"totalAmount": order.TotalAmount,
		"lines":       len(order.Items),
	}))

	l.Info("place_order_successful", "order_id", order.ID, "lines", len(order.Items), "total", order.TotalAmount.String())
	return order, nil
}
