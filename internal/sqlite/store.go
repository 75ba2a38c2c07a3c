// Package sqlite implements durable persistence for the E-library
// record collection and settings. It is a stateless read/write conduit
// over two key-value slots in a local SQLite database: each slot holds
// one UTF-8 JSON value, and loads fall back to safe defaults when a
// slot is absent or corrupt.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Kaylain7/E-library/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "library.db"

// Slot keys. The persisted layout is part of the external interface:
// "records" holds the JSON array of records, "settings" the JSON
// settings object.
const (
	slotRecords  = "records"
	slotSettings = "settings"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a handle on the durable slots. It holds no independent copy
// of the data; the record store owns the authoritative state.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// Open creates the data directory if needed, opens the database, and
// ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, open: true}, nil
}

// Close releases the database handle. Idempotent: closing a closed
// store succeeds. Operations after Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// LoadRecords reads the records slot. A missing slot, unreadable
// storage, malformed JSON, or a non-array decode all fall back to the
// empty collection; load never fails.
func (s *Store) LoadRecords() []types.Record {
	raw, found, err := s.get(slotRecords)
	if err != nil || !found {
		return []types.Record{}
	}
	var records []types.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil || records == nil {
		return []types.Record{}
	}
	return records
}

// SaveRecords serializes and writes the full collection. Write
// failures propagate: a dropped write must never look like success.
func (s *Store) SaveRecords(records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return s.put(slotRecords, string(data))
}

// LoadSettings reads the settings slot merged over the defaults, so a
// partially-saved settings object never yields missing fields.
func (s *Store) LoadSettings() types.Settings {
	settings := types.DefaultSettings()
	raw, found, err := s.get(slotSettings)
	if err != nil || !found {
		return settings
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return types.DefaultSettings()
	}
	return settings
}

// SaveSettings serializes and writes the settings object.
func (s *Store) SaveSettings(settings types.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.put(slotSettings, string(data))
}

// Clear removes both slots.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key IN (?, ?)`, slotRecords, slotSettings); err != nil {
		return fmt.Errorf("clear slots: %w", err)
	}
	return nil
}

// get reads one slot's raw JSON text.
func (s *Store) get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return "", false, types.ErrStoreClosed
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return value, true, nil
}

// put writes one slot unconditionally.
func (s *Store) put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}
