package repository

import (
	"context"

	"hotelier-service/internal/domain/entity"
)

// StayRepository defines the interface for the check-in store
type StayRepository interface {
	// Append persists a new stay. Uniqueness key: room key.
	Append(ctx context.Context, stay *entity.Stay) error
	// FindByRoomKey returns the last stored stay with the given room key,
	// or entity.ErrNotFound.
	FindByRoomKey(ctx context.Context, roomKey string) (*entity.Stay, error)
}
