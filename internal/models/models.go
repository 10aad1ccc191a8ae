package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string    `gorm:"not null"                  json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string    `gorm:"not null"                  json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name        string          `gorm:"not null"                    json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Category    string          `gorm:"index;not null"              json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Rating      float64         `gorm:"default:0"                   json:"rating"`
	Stock       int             `gorm:"default:0;check:stock >= 0"  json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Order struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"      json:"id"`
	UserID      uint            `gorm:"index;not null"                json:"userId"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"   json:"totalAmount"`
	Status      string          `gorm:"not null;default:pending"      json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"      json:"id"`
	OrderID   uint            `gorm:"index;not null"                json:"orderId"`
	ProductID uint            `gorm:"index;not null"                json:"productId"`
	Quantity  int             `gorm:"not null;check:quantity > 0"   json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"   json:"price"`

	Product Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// All lists the tables in dependency order for AutoMigrate.
func All() []any {
	return []any{&User{}, &Product{}, &Order{}, &OrderItem{}}
}

// LineTotal is quantity times the captured unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
