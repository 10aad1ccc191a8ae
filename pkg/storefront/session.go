package storefront

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/furniture_store/internal/transport"
	"github.com/Skotchmaster/furniture_store/pkg/tokens"
)

var (
	ErrNotAuthenticated = errors.New("login required")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Session owns the shopper's bearer token and cart and keeps both in Storage
// between runs.
type Session struct {
	client *Client
	store  Storage
	cart   *Cart

	mu    sync.RWMutex
	token string
	user  *transport.UserSummary
}

// NewSession loads the cart and any stored token. The token is not trusted
// until Restore has confirmed it with the backend.
func NewSession(client *Client, store Storage) *Session {
	s := &Session{client: client, store: store, cart: LoadCart(store)}
	if raw, ok, err := store.Get(keyToken); err == nil && ok {
		s.token = strings.TrimSpace(string(raw))
	}
	return s
}

func (s *Session) Cart() *Cart { return s.cart }

func (s *Session) User() (*transport.UserSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) LoggedIn() bool {
	_, ok := s.User()
	return ok
}

// Restore re-establishes the user from a stored token. A token that cannot be
// decoded or that the backend rejects with 401 is discarded. Transport errors
// are returned and leave the token in place.
func (s *Session) Restore(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	if _, err := tokens.PeekUserID(token); err != nil {
		return s.dropToken()
	}

	me, err := s.client.Me(ctx, token)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return s.dropToken()
		}
		return err
	}

	s.mu.Lock()
	s.user = me
	s.mu.Unlock()
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(resp)
}

func (s *Session) Register(ctx context.Context, name, email, password string) error {
	resp, err := s.client.Register(ctx, transport.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.adopt(resp)
}

// Logout forgets the credential and empties the cart.
func (s *Session) Logout() error {
	if err := s.dropToken(); err != nil {
		return err
	}
	return s.cart.Clear()
}

// AddToCart requires a logged-in user.
func (s *Session) AddToCart(productID uint, name string, price decimal.Decimal) error {
	if !s.LoggedIn() {
		return ErrNotAuthenticated
	}
	return s.cart.Add(productID, name, price)
}

// Checkout submits the cart as an order and clears it once the backend has
// accepted. The cart is left untouched on failure.
func (s *Session) Checkout(ctx context.Context) (uint, error) {
	token := s.Token()
	if token == "" || !s.LoggedIn() {
		return 0, ErrNotAuthenticated
	}
	items := s.cart.Items()
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	req := transport.CreateOrderRequest{
		Items:       make([]transport.OrderItemRequest, 0, len(items)),
		TotalAmount: s.cart.Total(),
	}
	for _, it := range items {
		req.Items = append(req.Items, transport.OrderItemRequest{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	ack, err := s.client.PlaceOrder(ctx, token, req)
	if err != nil {
		return 0, err
	}
	if err := s.cart.Clear(); err != nil {
		return ack.OrderID, err
	}
	return ack.OrderID, nil
}

func (s *Session) adopt(resp *transport.AuthResponse) error {
	s.mu.Lock()
	s.token = resp.Token
	u := resp.User
	s.user = &u
	s.mu.Unlock()
	return s.store.Set(keyToken, []byte(resp.Token))
}

func (s *Session) dropToken() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return s.store.Delete(keyToken)
}
