package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hotelier-service/internal/domain/entity"
)

// jsonStore persists one record type as a JSON array in a single file.
// Every append re-reads the file, checks uniqueness in memory, and rewrites
// the whole array. That is safe only for a single writer in a single
// process; concurrent external writers to the same file are an unguarded
// hazard of this storage scheme.
type jsonStore[T any] struct {
	path string
}

// uniqueKey projects a record onto one uniqueness key. msg becomes the
// error text when an existing record collides on this key.
type uniqueKey[T any] struct {
	msg string
	fn  func(T) string
}

func newJSONStore[T any](path string) *jsonStore[T] {
	return &jsonStore[T]{path: path}
}

// loadOrEmpty returns all persisted records. A missing file is an empty
// store; an unreadable or undecodable file wraps entity.ErrStoreCorrupt.
func (s *jsonStore[T]) loadOrEmpty() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %v: %w", s.path, err, entity.ErrStoreCorrupt)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding store %s: %w", s.path, entity.ErrStoreCorrupt)
	}
	return records, nil
}

// appendUnique appends the record and rewrites the store, after scanning
// the existing records for a collision on any of the uniqueness keys.
// Nothing is written when a collision is found.
func (s *jsonStore[T]) appendUnique(record T, keys ...uniqueKey[T]) error {
	records, err := s.loadOrEmpty()
	if err != nil {
		return err
	}
	for _, existing := range records {
		for _, key := range keys {
			if key.fn(existing) == key.fn(record) {
				return fmt.Errorf("%s: %w", key.msg, entity.ErrDuplicate)
			}
		}
	}
	records = append(records, record)
	return s.persist(records)
}

// findLast returns the last record matching the predicate. When in-memory
// uniqueness has been bypassed and the store holds several matches, the
// last one wins.
func (s *jsonStore[T]) findLast(match func(T) bool) (T, bool, error) {
	var found T
	ok := false
	records, err := s.loadOrEmpty()
	if err != nil {
		return found, false, err
	}
	for _, record := range records {
		if match(record) {
			found = record
			ok = true
		}
	}
	return found, ok, nil
}

func (s *jsonStore[T]) persist(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store %s: %w", s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", s.path, err)
	}
	return nil
}
