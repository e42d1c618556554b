// Package store persists the food log collection. The collection is owned by
// a LogStore; scoring and aggregation never touch persistence directly.
package store

import (
	"errors"

	"github.com/aficat/makan365/internal/model"
)

// ErrNotFound is returned by Remove when no entry has the given id.
var ErrNotFound = errors.New("log entry not found")

// LogStore is the repository for the log collection. The collection is
// persisted as one unit: Append and Remove are read-modify-write of the
// whole list.
type LogStore interface {
	List() ([]model.LogEntry, error)
	Append(entry model.LogEntry) error
	Remove(id string) error
	Replace(entries []model.LogEntry) error
}
