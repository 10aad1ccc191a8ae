package storefront

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Cart is the shopper's pending selection. Every mutation is written back to
// storage; entries are unique by product and always have quantity >= 1.
type Cart struct {
	mu       sync.Mutex
	items    []CartItem
	store    Storage
	onChange func(items []CartItem, count int)
}

// LoadCart restores the cart from store. Missing or unreadable data yields an
// empty cart.
func LoadCart(store Storage) *Cart {
	c := &Cart{store: store}
	raw, ok, err := store.Get(keyCart)
	if err != nil || !ok {
		return c
	}
	var items []CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return c
	}
	c.items = sanitize(items)
	return c
}

// sanitize drops entries that could not have been written by Cart itself.
func sanitize(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 || seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		out = append(out, it)
	}
	return out
}

// OnChange registers fn to run after every mutation with a snapshot of the
// entries and the item count.
func (c *Cart) OnChange(fn func(items []CartItem, count int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Cart) Add(productID uint, name string, price decimal.Decimal) error {
	return c.mutate(func() {
		for i := range c.items {
			if c.items[i].ProductID == productID {
				c.items[i].Quantity++
				return
			}
		}
		c.items = append(c.items, CartItem{ProductID: productID, Name: name, Price: price, Quantity: 1})
	})
}

// UpdateQuantity applies delta; an entry that drops to zero or below is removed.
func (c *Cart) UpdateQuantity(productID uint, delta int) error {
	return c.mutate(func() {
		for i := range c.items {
			if c.items[i].ProductID != productID {
				continue
			}
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	})
}

func (c *Cart) Remove(productID uint) error {
	return c.mutate(func() {
		for i := range c.items {
			if c.items[i].ProductID == productID {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return
			}
		}
	})
}

func (c *Cart) Clear() error {
	return c.mutate(func() { c.items = nil })
}

func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Count is the sum of quantities, the number shown on the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return count(c.items)
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func count(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) mutate(fn func()) error {
	c.mu.Lock()
	fn()
	snapshot := append([]CartItem(nil), c.items...)
	hook := c.onChange
	err := c.persistLocked()
	c.mu.Unlock()

	if hook != nil {
		hook(snapshot, count(snapshot))
	}
	return err
}

func (c *Cart) persistLocked() error {
	items := c.items
	if items == nil {
		items = []CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(keyCart, raw)
}
