package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/domain/repository"
)

// JSONStayRepository implements StayRepository over a JSON array file.
type JSONStayRepository struct {
	store *jsonStore[*entity.Stay]
}

// NewJSONStayRepository creates a stay repository rooted at the given store
// directory.
func NewJSONStayRepository(dir string) repository.StayRepository {
	return &JSONStayRepository{
		store: newJSONStore[*entity.Stay](filepath.Join(dir, stayStoreFile)),
	}
}

// Append persists a new stay, rejecting a duplicate room key.
func (r *JSONStayRepository) Append(ctx context.Context, stay *entity.Stay) error {
	return r.store.appendUnique(stay,
		uniqueKey[*entity.Stay]{
			msg: "check-in already performed",
			fn:  func(s *entity.Stay) string { return s.RoomKey },
		},
	)
}

// FindByRoomKey returns the last stay stored under the room key.
func (r *JSONStayRepository) FindByRoomKey(ctx context.Context, roomKey string) (*entity.Stay, error) {
	found, ok, err := r.store.findLast(func(s *entity.Stay) bool {
		return s.RoomKey == roomKey
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("room key not found: %w", entity.ErrNotFound)
	}
	return found, nil
}
