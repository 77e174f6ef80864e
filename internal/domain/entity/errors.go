package entity

import "errors"

// Every lifecycle failure wraps one of these sentinels so callers can branch
// with errors.Is while still seeing a human-readable message.
var (
	// ErrFormat is returned when a field fails its syntactic pattern.
	ErrFormat = errors.New("invalid format")

	// ErrChecksum is returned when a field is well formed but its checksum
	// does not hold (Luhn digit or national ID check letter).
	ErrChecksum = errors.New("checksum mismatch")

	// ErrDuplicate is returned when appending a record would violate a
	// uniqueness key of its store.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when a store lookup finds no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrOwnership is returned when a localizer exists but belongs to a
	// different id card than the one claimed.
	ErrOwnership = errors.New("identifier belongs to another guest")

	// ErrTampered is returned when a stored record's recomputed localizer no
	// longer matches the one persisted with it.
	ErrTampered = errors.New("record has been manipulated")

	// ErrDateMismatch is returned when an arrival or departure is attempted
	// on a calendar date other than the one recorded.
	ErrDateMismatch = errors.New("date is not today")

	// ErrStoreCorrupt is returned when a persisted store cannot be read back
	// as a record sequence.
	ErrStoreCorrupt = errors.New("store content is corrupt")
)
