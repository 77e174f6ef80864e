package repository

import (
	"context"

	"hotelier-service/internal/domain/entity"
)

// CheckoutRepository defines the interface for the checkout store
type CheckoutRepository interface {
	// Append persists a new checkout. Uniqueness key: room key.
	Append(ctx context.Context, checkout *entity.Checkout) error
}
