package entity_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier-service/internal/domain/entity"
)

var hex32 = regexp.MustCompile(`^[0-9a-f]{32}$`)

func newTestReservation(at time.Time) *entity.Reservation {
	return entity.NewReservation(
		"12345678Z",
		"4111111111111111",
		"Jose Luis Collado",
		"+123456789",
		"DOUBLE",
		"15/04/2025",
		3,
		at,
	)
}

func TestNewReservation_LocalizerShape(t *testing.T) {
	r := newTestReservation(time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC))

	assert.Regexp(t, hex32, r.Localizer)
}

func TestNewReservation_DerivationIsDeterministic(t *testing.T) {
	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

	a := newTestReservation(at)
	b := newTestReservation(at)

	// Same content, same creation instant: same localizer.
	assert.Equal(t, a.Localizer, b.Localizer)
}

func TestNewReservation_CreationInstantChangesLocalizer(t *testing.T) {
	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

	a := newTestReservation(at)
	b := newTestReservation(at.Add(time.Second))

	assert.NotEqual(t, a.Localizer, b.Localizer)
}

func TestNewReservation_ContentChangesLocalizer(t *testing.T) {
	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	base := newTestReservation(at)

	changed := entity.NewReservation(
		base.IDCard,
		base.CreditCard,
		base.NameSurname,
		base.Phone,
		base.RoomType,
		base.ArrivalDate,
		base.NumDays+1, // one field differs
		at,
	)

	require.NotEqual(t, base.NumDays, changed.NumDays)
	assert.NotEqual(t, base.Localizer, changed.Localizer)
}
