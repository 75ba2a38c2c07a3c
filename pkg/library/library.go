// Package library implements the authoritative record store: the
// in-memory collection of book records and settings, CRUD operations,
// the filtered/sorted query view, tag enumeration, and reading
// statistics. Every mutation persists before it commits to memory, so
// the durable state and the in-memory state never diverge.
//
// Callers are expected to validate input with pkg/validate before
// mutating; the store itself enforces only identity and atomicity.
package library

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Kaylain7/E-library/internal/sqlite"
	"github.com/Kaylain7/E-library/pkg/types"
)

// timestampLayout matches the persisted ISO-8601 form with millisecond
// precision ("2024-03-15T09:30:00.000Z").
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Store owns the record collection and settings. It is not an ambient
// singleton: tests and callers construct isolated instances with Open.
type Store struct {
	mu       sync.RWMutex
	db       *sqlite.Store
	records  []types.Record
	settings types.Settings
	idSeq    uint64
}

// Open loads the persisted collection and settings from dataDir.
// Corrupt or absent slots fall back to the empty collection and the
// default settings; Open only fails when storage cannot be opened.
func Open(dataDir string) (*Store, error) {
	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &Store{
		db:       db,
		records:  db.LoadRecords(),
		settings: db.LoadSettings(),
	}, nil
}

// Close releases the underlying storage. Idempotent.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create assigns an id and creation timestamps to r, appends it to the
// collection, and persists. The caller must have validated the field
// values already. Any ID, CreatedAt, or UpdatedAt on the input is
// overwritten.
func (s *Store) Create(r types.Record) (types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowISO()
	r.ID = s.nextID()
	r.CreatedAt = now
	r.UpdatedAt = now

	next := append(copyRecords(s.records), r)
	if err := s.db.SaveRecords(next); err != nil {
		return types.Record{}, fmt.Errorf("persist records: %w", err)
	}
	s.records = next
	return r, nil
}

// Update merges the non-nil patch fields onto the record with the
// given id, refreshes UpdatedAt, and persists. Returns ErrNotFound if
// no record has that id.
func (s *Store) Update(id string, patch types.RecordPatch) (types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyRecords(s.records)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Record{}, types.ErrNotFound
	}

	patch.Apply(&next[idx])
	next[idx].UpdatedAt = nowISO()
	if err := s.db.SaveRecords(next); err != nil {
		return types.Record{}, fmt.Errorf("persist records: %w", err)
	}
	s.records = next
	return next[idx], nil
}

// Delete removes the record with the given id and persists. Returns
// ErrNotFound if no record has that id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]types.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if len(next) == len(s.records) {
		return types.ErrNotFound
	}
	if err := s.db.SaveRecords(next); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	s.records = next
	return nil
}

// ReplaceAll unconditionally overwrites the entire collection and
// persists. Used for import and for clear-all; the caller is
// responsible for pre-validating the replacement set and for having
// obtained the user's confirmation.
func (s *Store) ReplaceAll(records []types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyRecords(records)
	if err := s.db.SaveRecords(next); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	s.records = next
	return nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return types.Record{}, types.ErrNotFound
}

// Records returns a copy of the full collection in stored order.
func (s *Store) Records() []types.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRecords(s.records)
}

// Settings returns the current settings.
func (s *Store) Settings() types.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// PatchSettings validates and merges a partial settings patch, then
// persists the merged object.
func (s *Store) PatchSettings(patch types.SettingsPatch) (types.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := patch.Validate(); err != nil {
		return s.settings, err
	}
	merged := s.settings
	patch.Apply(&merged)
	if err := s.db.SaveSettings(merged); err != nil {
		return s.settings, fmt.Errorf("persist settings: %w", err)
	}
	s.settings = merged
	return merged, nil
}

// Clear removes both durable slots and resets the in-memory state to
// the empty collection and default settings. The caller must have
// obtained confirmation first.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Clear(); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	s.records = []types.Record{}
	s.settings = types.DefaultSettings()
	return nil
}

// nextID generates a record id from a coarse time component and an
// in-process sequence number, so two records created in the same
// millisecond never collide. Caller holds the write lock. Ids are
// never reused: the sequence only advances, even when a persist fails.
func (s *Store) nextID() string {
	s.idSeq++
	return fmt.Sprintf("book_%s_%04d", strconv.FormatInt(time.Now().UnixMilli(), 36), s.idSeq)
}

// nowISO returns the current UTC time in the persisted timestamp form.
func nowISO() string {
	return time.Now().UTC().Format(timestampLayout)
}

// copyRecords returns a non-nil copy of records.
func copyRecords(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)
	return out
}
