package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aficat/makan365/internal/model"
)

// logsKey is the single local_store slot holding the whole collection,
// kept byte-compatible with the web app's localStorage key.
const logsKey = "makan365_logs"

// SQLiteStore keeps the log collection as a JSON array in one local_store
// row. Reads of a corrupt slot reset to an empty collection instead of
// failing the whole screen.
type SQLiteStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) List() ([]model.LogEntry, error) {
	return s.load()
}

func (s *SQLiteStore) Append(entry model.LogEntry) error {
	logs, err := s.load()
	if err != nil {
		return err
	}
	for _, e := range logs {
		if e.ID == entry.ID {
			return fmt.Errorf("log entry %s already exists", entry.ID)
		}
	}
	return s.save(append(logs, entry))
}

func (s *SQLiteStore) Remove(id string) error {
	logs, err := s.load()
	if err != nil {
		return err
	}
	kept := logs[:0]
	for _, e := range logs {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(logs) {
		return ErrNotFound
	}
	return s.save(kept)
}

func (s *SQLiteStore) Replace(entries []model.LogEntry) error {
	if entries == nil {
		entries = []model.LogEntry{}
	}
	return s.save(entries)
}

func (s *SQLiteStore) load() ([]model.LogEntry, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM local_store WHERE key = ?`, logsKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return []model.LogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log collection: %w", err)
	}
	var logs []model.LogEntry
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		slog.Warn("log collection slot is corrupt, resetting to empty", "key", logsKey, "error", err)
		return []model.LogEntry{}, nil
	}
	if logs == nil {
		logs = []model.LogEntry{}
	}
	return logs, nil
}

func (s *SQLiteStore) save(logs []model.LogEntry) error {
	raw, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("marshal log collection: %w", err)
	}
	_, err = s.db.Exec(`
INSERT INTO local_store(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, logsKey, string(raw))
	if err != nil {
		return fmt.Errorf("write log collection: %w", err)
	}
	return nil
}
