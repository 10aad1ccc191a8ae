package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/furniture_store/internal/models"
	"github.com/Skotchmaster/furniture_store/internal/mykafka"
	"github.com/Skotchmaster/furniture_store/pkg/logging"
)

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrEmptyCart          = errors.New("cart is empty")       // 400
	ErrConflict           = errors.New("conflict")            // 400, duplicate email
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotFound           = errors.New("not found")           // 401 at the gate

	ErrPasswordTooLong = fmt.Errorf("%w: password longer than %d bytes", ErrValidation, MaxPasswordBytes)
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, event mykafka.Event) error
}

type OrderObserver interface {
	ObserveOrder(lines int)
}

type CatalogCache interface {
	Products(ctx context.Context) ([]models.Product, bool, error)
	SetProducts(ctx context.Context, items []models.Product) error
	Invalidate(ctx context.Context) error
}

const publishTimeout = 5 * time.Second

// publish never fails the caller: the write it reports on is already committed.
func publish(ctx context.Context, p EventPublisher, key string, ev mykafka.Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.PublishEvent(ctx, key, ev); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "event_type", ev.Type, "event_id", ev.ID, "error", err)
	}
}
