package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/usecase"
)

func TestIntegrityVerifier_AcceptsUntouchedReservation(t *testing.T) {
	v := usecase.NewIntegrityVerifier()
	r := entity.NewReservation(
		"12345678Z", "4111111111111111", "Jose Luis Collado", "+123456789",
		"DOUBLE", "15/04/2025", 3,
		time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, v.Verify(r))
}

func TestIntegrityVerifier_RejectsEditedField(t *testing.T) {
	v := usecase.NewIntegrityVerifier()
	r := entity.NewReservation(
		"12345678Z", "4111111111111111", "Jose Luis Collado", "+123456789",
		"DOUBLE", "15/04/2025", 3,
		time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	)

	edited := *r
	edited.Phone = "+999999999"

	assert.ErrorIs(t, v.Verify(&edited), entity.ErrTampered)
}

func TestIntegrityVerifier_RejectsEditedTimestamp(t *testing.T) {
	v := usecase.NewIntegrityVerifier()
	r := entity.NewReservation(
		"12345678Z", "4111111111111111", "Jose Luis Collado", "+123456789",
		"DOUBLE", "15/04/2025", 3,
		time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	)

	edited := *r
	edited.ReservedAt++

	assert.ErrorIs(t, v.Verify(&edited), entity.ErrTampered)
}
