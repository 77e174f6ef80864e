package repository

import (
	"context"

	"hotelier-service/internal/domain/entity"
)

// ReservationRepository defines the interface for the reservation store
type ReservationRepository interface {
	// Append persists a new reservation. Uniqueness keys: localizer and
	// id card, both checked against the whole store.
	Append(ctx context.Context, reservation *entity.Reservation) error
	// FindByLocalizer returns the last stored reservation with the given
	// localizer, or entity.ErrNotFound.
	FindByLocalizer(ctx context.Context, localizer string) (*entity.Reservation, error)
}
