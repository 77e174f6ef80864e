package usecase

import (
	"fmt"
	"time"

	"hotelier-service/internal/domain/entity"
)

// IntegrityVerifier detects reservations edited after creation. It rebuilds
// the reservation from the stored content as of the stored creation instant
// and compares the recomputed localizer with the persisted one; any edited
// field changes the digest. This is a checksum, not a signature: it catches
// corruption and naive edits, not an adversary who knows the derivation.
type IntegrityVerifier struct{}

// NewIntegrityVerifier creates a new integrity verifier
func NewIntegrityVerifier() *IntegrityVerifier {
	return &IntegrityVerifier{}
}

// Verify recomputes the reservation's localizer and compares it to the
// stored one. A mismatch wraps entity.ErrTampered.
func (v *IntegrityVerifier) Verify(r *entity.Reservation) error {
	rebuilt := entity.NewReservation(
		r.IDCard,
		r.CreditCard,
		r.NameSurname,
		r.Phone,
		r.RoomType,
		r.ArrivalDate,
		r.NumDays,
		time.Unix(r.ReservedAt, 0),
	)
	if rebuilt.Localizer != r.Localizer {
		return fmt.Errorf("reservation %s: %w", r.Localizer, entity.ErrTampered)
	}
	return nil
}
