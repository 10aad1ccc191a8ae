package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPlaceOrder_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "empty@example.com")

	for _, items := range [][]transport.OrderItemRequest{nil, {}} {
		order, err := env.Checkout.PlaceOrder(context.Background(), u.ID, transport.CreateOrderRequest{
			Items:       items,
			TotalAmount: dec("10"),
		})
		require.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, order)
	}

	assert.Zero(t, env.count(t, &models.Order{}))
	assert.Zero(t, env.count(t, &models.OrderItem{}))
	assert.Zero(t, env.Metrics.orders)
	assert.NotContains(t, env.Events.types(), mykafka.EventOrderPlaced)
}

func TestPlaceOrder_OneLinePerProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "buyer@example.com")
	sofa := env.product(t, "Sofa", "15999")
	vase := env.product(t, "Vase", "12.50")

	order, err := env.Checkout.PlaceOrder(ctx, u.ID, transport.CreateOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: sofa.ID, Quantity: 1, Price: dec("15999")},
			{ProductID: vase.ID, Quantity: 2, Price: dec("12.50")},
		},
		TotalAmount: dec("16024"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(dec("16024")), order.TotalAmount.String())
	assert.EqualValues(t, 1, env.count(t, &models.Order{}))
	assert.EqualValues(t, 2, env.count(t, &models.OrderItem{}))

	stored, err := env.Repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, sofa.ID, stored.Items[0].ProductID)
	assert.Equal(t, vase.ID, stored.Items[1].ProductID)

	sum := decimal.Zero
	for _, it := range stored.Items {
		sum = sum.Add(it.LineTotal())
	}
	assert.True(t, sum.Equal(stored.TotalAmount))

	assert.Equal(t, 1, env.Metrics.orders)
	assert.Equal(t, 2, env.Metrics.lines)
	assert.Contains(t, env.Events.types(), mykafka.EventOrderPlaced)
}

func TestPlaceOrder_MergesRepeatedProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "merge@example.com")
	lamp := env.product(t, "Lamp", "1000")
	rug := env.product(t, "Rug", "7499")

	order, err := env.Checkout.PlaceOrder(ctx, u.ID, transport.CreateOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: lamp.ID, Quantity: 1},
			{ProductID: rug.ID, Quantity: 1},
			{ProductID: lamp.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, lamp.ID, order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, rug.ID, order.Items[1].ProductID)
	assert.True(t, order.TotalAmount.Equal(dec("10499")))
	assert.EqualValues(t, 2, env.count(t, &models.OrderItem{}))
}

func TestPlaceOrder_RecordsCatalogPricesNotClaimed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.user(t, "cheat@example.com")
	bed := env.product(t, "Bed", "24999")

	order, err := env.Checkout.PlaceOrder(ctx, u.ID, transport.CreateOrderRequest{
		Items:       []transport.OrderItemRequest{{ProductID: bed.ID, Quantity: 2, Price: dec("1")}},
		TotalAmount: dec("2"),
	})
	require.NoError(t, err)

	stored, err := env.Repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(dec("49998")), stored.TotalAmount.String())
	require.Len(t, stored.Items, 1)
	assert.True(t, stored.Items[0].Price.Equal(dec("24999")))
}

func TestPlaceOrder_LogsClaimedPriceMismatch(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "prices@example.com")
	lamp := env.product(t, "Lamp", "1000")
	rug := env.product(t, "Rug", "450")

	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "warn"))

	_, err := env.Checkout.PlaceOrder(ctx, u.ID, transport.CreateOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: lamp.ID, Quantity: 1, Price: dec("1")},
			{ProductID: rug.ID, Quantity: 1, Price: dec("450")},
		},
		TotalAmount: dec("1450"),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "claimed_price_mismatch"), out)
	assert.Contains(t, out, fmt.Sprintf(`"product_id":%d`, lamp.ID))
	assert.NotContains(t, out, "claimed_total_mismatch")
}

func TestPlaceOrder_Validation(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "invalid@example.com")
	p := env.product(t, "Chair", "11999")

	tests := []struct {
		name  string
		items []transport.OrderItemRequest
	}{
		{name: "zero quantity", items: []transport.OrderItemRequest{{ProductID: p.ID, Quantity: 0}}},
		{name: "negative quantity", items: []transport.OrderItemRequest{{ProductID: p.ID, Quantity: -1}}},
		{name: "missing product id", items: []transport.OrderItemRequest{{Quantity: 1}}},
		{name: "quantity above limit", items: []transport.OrderItemRequest{{ProductID: p.ID, Quantity: MaxLineQuantity + 1}}},
		{name: "merged quantity above limit", items: []transport.OrderItemRequest{
			{ProductID: p.ID, Quantity: MaxLineQuantity},
			{ProductID: p.ID, Quantity: 1},
		}},
		{name: "merged quantity would overflow", items: []transport.OrderItemRequest{
			{ProductID: p.ID, Quantity: math.MaxInt},
			{ProductID: p.ID, Quantity: math.MaxInt},
		}},
		{name: "unknown product", items: []transport.OrderItemRequest{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: p.ID + 100, Quantity: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := env.Checkout.PlaceOrder(context.Background(), u.ID, transport.CreateOrderRequest{Items: tt.items})
			require.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, order)
		})
	}
	assert.Zero(t, env.count(t, &models.Order{}))
	assert.Zero(t, env.count(t, &models.OrderItem{}))
}

func TestPlaceOrder_FaultRollsBackEverything(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "fault@example.com")
	a := env.product(t, "Shelf", "3299")
	b := env.product(t, "Mirror", "3499")

	errDisk := errors.New("disk full")
	require.NoError(t, env.DB.Callback().Create().Before("gorm:create").Register("test:fail_order_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			_ = tx.AddError(errDisk)
		}
	}))

	order, err := env.Checkout.PlaceOrder(context.Background(), u.ID, transport.CreateOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: a.ID, Quantity: 1},
			{ProductID: b.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, errDisk)
	assert.Nil(t, order)
	assert.NotErrorIs(t, err, ErrValidation)

	assert.Zero(t, env.count(t, &models.Order{}))
	assert.Zero(t, env.count(t, &models.OrderItem{}))
	assert.Zero(t, env.Metrics.orders)
}

func TestMergeLines(t *testing.T) {
	lines, err := mergeLines([]transport.OrderItemRequest{
		{ProductID: 3, Quantity: 1, Price: dec("5")},
		{ProductID: 1, Quantity: 4, Price: dec("2")},
		{ProductID: 3, Quantity: 2, Price: dec("7")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, uint(3), lines[0].productID)
	assert.Equal(t, 3, lines[0].quantity)
	assert.True(t, lines[0].claimed.Equal(dec("5")))
	assert.Equal(t, uint(1), lines[1].productID)
	assert.Equal(t, 4, lines[1].quantity)
}

func TestMergeLines_QuantityBound(t *testing.T) {
	lines, err := mergeLines([]transport.OrderItemRequest{
		{ProductID: 1, Quantity: MaxLineQuantity - 1},
		{ProductID: 1, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, MaxLineQuantity, lines[0].quantity)

	_, err = mergeLines([]transport.OrderItemRequest{
		{ProductID: 1, Quantity: math.MaxInt},
		{ProductID: 1, Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrValidation)
}
