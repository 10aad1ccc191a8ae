// Package transport holds the JSON contract shared by the HTTP handlers and
// the storefront client.
//
// Importing it makes every decimal.Decimal in the process marshal as a JSON
// number ("price": 12.5), the format the API documents. Both the server and
// pkg/storefront import it, so they always agree on the money format.
package transport

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Rating      *float64        `json:"rating"`
	Stock       *int            `json:"stock"`
}

// OrderItemRequest is one cart entry as submitted at checkout. Price is the
// client's view; a mismatch with the catalog is logged and the catalog price
// is stored.
type OrderItemRequest struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	Items       []OrderItemRequest `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}

type OrderPlacedResponse struct {
	Message     string          `json:"message"`
	OrderID     uint            `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
