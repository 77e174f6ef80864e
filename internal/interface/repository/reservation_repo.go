package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/domain/repository"
)

// Store file names kept from the historical data layout, so existing stores
// stay readable.
const (
	reservationStoreFile = "store_reservation.json"
	stayStoreFile        = "store_check_in.json"
	checkoutStoreFile    = "store_check_out.json"
)

// JSONReservationRepository implements ReservationRepository over a JSON
// array file.
type JSONReservationRepository struct {
	store *jsonStore[*entity.Reservation]
}

// NewJSONReservationRepository creates a reservation repository rooted at
// the given store directory.
func NewJSONReservationRepository(dir string) repository.ReservationRepository {
	return &JSONReservationRepository{
		store: newJSONStore[*entity.Reservation](filepath.Join(dir, reservationStoreFile)),
	}
}

// Append persists a new reservation, rejecting a duplicate localizer or a
// second reservation for the same id card. The id card scan deliberately
// covers the whole store, checked-in reservations included.
func (r *JSONReservationRepository) Append(ctx context.Context, reservation *entity.Reservation) error {
	return r.store.appendUnique(reservation,
		uniqueKey[*entity.Reservation]{
			msg: "reservation already exists",
			fn:  func(res *entity.Reservation) string { return res.Localizer },
		},
		uniqueKey[*entity.Reservation]{
			msg: "this id card already has a reservation",
			fn:  func(res *entity.Reservation) string { return res.IDCard },
		},
	)
}

// FindByLocalizer returns the last reservation stored under the localizer.
func (r *JSONReservationRepository) FindByLocalizer(ctx context.Context, localizer string) (*entity.Reservation, error) {
	found, ok, err := r.store.findLast(func(res *entity.Reservation) bool {
		return res.Localizer == localizer
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("localizer not found: %w", entity.ErrNotFound)
	}
	return found, nil
}
