package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/interface/repository"
)

func testReservation(at time.Time) *entity.Reservation {
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

func TestReservationRepo_FindOnMissingStore(t *testing.T) {
	repo := repository.NewJSONReservationRepository(t.TempDir())

	_, err := repo.FindByLocalizer(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestReservationRepo_AppendAndFind(t *testing.T) {
	repo := repository.NewJSONReservationRepository(t.TempDir())
	res := testReservation(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Append(context.Background(), res))

	got, err := repo.FindByLocalizer(context.Background(), res.Localizer)
	require.NoError(t, err)
	assert.Equal(t, res.IDCard, got.IDCard)
	assert.Equal(t, res.ReservedAt, got.ReservedAt)
	assert.Equal(t, res.Localizer, got.Localizer)
}

func TestReservationRepo_DuplicateLocalizer(t *testing.T) {
	repo := repository.NewJSONReservationRepository(t.TempDir())
	res := testReservation(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Append(context.Background(), res))

	err := repo.Append(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestReservationRepo_DuplicateIDCard(t *testing.T) {
	repo := repository.NewJSONReservationRepository(t.TempDir())
	at := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(context.Background(), testReservation(at)))

	// Different content and creation instant, so a fresh localizer, but the
	// same id card. The scan covers the whole store.
	other := entity.NewReservation(
		"12345678Z",
		"4539148803436467",
		"Maria del Carmen Vega",
		"+987654321",
		"SUITE",
		"16/04/2025",
		5,
		at.Add(time.Hour),
	)
	err := repo.Append(context.Background(), other)
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestReservationRepo_CorruptStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store_reservation.json")
	require.NoError(t, os.WriteFile(path, []byte("{not a record sequence"), 0o644))

	repo := repository.NewJSONReservationRepository(dir)

	_, err := repo.FindByLocalizer(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, entity.ErrStoreCorrupt)

	err = repo.Append(context.Background(), testReservation(time.Now()))
	assert.ErrorIs(t, err, entity.ErrStoreCorrupt)
}

func TestReservationRepo_LastMatchWins(t *testing.T) {
	// In-memory uniqueness normally prevents duplicate localizers, but a
	// store written by other means may carry them; the lookup must return
	// the last match.
	dir := t.TempDir()
	at := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	first := testReservation(at)
	second := testReservation(at)
	second.NumDays = 9

	data, err := json.MarshalIndent([]*entity.Reservation{first, second}, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "store_reservation.json"), data, 0o644))

	repo := repository.NewJSONReservationRepository(dir)

	got, err := repo.FindByLocalizer(context.Background(), first.Localizer)
	require.NoError(t, err)
	assert.Equal(t, 9, got.NumDays)
}

func TestStayRepo_AppendFindAndDuplicate(t *testing.T) {
	repo := repository.NewJSONStayRepository(t.TempDir())
	at := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	stay := entity.NewStay("12345678Z", "deadbeefdeadbeefdeadbeefdeadbeef", 3, "DOUBLE", at)

	require.NoError(t, repo.Append(context.Background(), stay))

	got, err := repo.FindByRoomKey(context.Background(), stay.RoomKey)
	require.NoError(t, err)
	assert.Equal(t, stay.DepartsAt, got.DepartsAt)

	err = repo.Append(context.Background(), stay)
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestStayRepo_NotFound(t *testing.T) {
	repo := repository.NewJSONStayRepository(t.TempDir())

	_, err := repo.FindByRoomKey(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCheckoutRepo_AppendAndDuplicate(t *testing.T) {
	dir := t.TempDir()
	repo := repository.NewJSONCheckoutRepository(dir)
	checkout := &entity.Checkout{RoomKey: "abc123", CheckedOutAt: time.Now().Unix()}

	require.NoError(t, repo.Append(context.Background(), checkout))

	err := repo.Append(context.Background(), checkout)
	assert.ErrorIs(t, err, entity.ErrDuplicate)

	// The store is a flat JSON array with one record.
	data, err := os.ReadFile(filepath.Join(dir, "store_check_out.json"))
	require.NoError(t, err)
	var records []entity.Checkout
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 1)
}

func TestAppendFailureLeavesStoreUnwritten(t *testing.T) {
	dir := t.TempDir()
	repo := repository.NewJSONReservationRepository(dir)
	res := testReservation(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Append(context.Background(), res))
	before, err := os.ReadFile(filepath.Join(dir, "store_reservation.json"))
	require.NoError(t, err)

	require.Error(t, repo.Append(context.Background(), res))

	after, err := os.ReadFile(filepath.Join(dir, "store_reservation.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
