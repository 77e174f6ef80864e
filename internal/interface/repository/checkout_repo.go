package repository

import (
	"context"
	"path/filepath"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/domain/repository"
)

// JSONCheckoutRepository implements CheckoutRepository over a JSON array
// file.
type JSONCheckoutRepository struct {
	store *jsonStore[*entity.Checkout]
}

// NewJSONCheckoutRepository creates a checkout repository rooted at the
// given store directory.
func NewJSONCheckoutRepository(dir string) repository.CheckoutRepository {
	return &JSONCheckoutRepository{
		store: newJSONStore[*entity.Checkout](filepath.Join(dir, checkoutStoreFile)),
	}
}

// Append persists a new checkout, rejecting a duplicate room key.
func (r *JSONCheckoutRepository) Append(ctx context.Context, checkout *entity.Checkout) error {
	return r.store.appendUnique(checkout,
		uniqueKey[*entity.Checkout]{
			msg: "guest already checked out",
			fn:  func(c *entity.Checkout) string { return c.RoomKey },
		},
	)
}
