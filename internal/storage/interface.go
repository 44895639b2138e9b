package storage

import (
	"context"
	"fmt"

	"github.com/withobsrvr/recordctl/internal/record"
)

// RecordStorage persists processed records grouped by session. Every
// processor run writes to its own session.
//
// Persistent implementations store record content as JSON, so content read
// back has the JSON-decoded type: numbers become float64, slices []any and
// maps map[string]any. Strings round-trip unchanged.
type RecordStorage interface {
	// Open initializes the storage and makes it ready for use
	Open() error

	// Close closes the storage and releases any resources
	Close() error

	// Append stores a record in the session, creating the session if needed.
	// Storing the same record ID twice in one session is an error.
	Append(ctx context.Context, session string, rec record.Record) error

	// List returns the records of a session ordered by ID
	List(ctx context.Context, session string) ([]record.Record, error)

	// Sessions returns all session names in sorted order
	Sessions(ctx context.Context) ([]string, error)
}

// ErrSessionNotFound is returned when a session has no stored records
type ErrSessionNotFound struct {
	Session string
}

// Error implements the error interface
func (e ErrSessionNotFound) Error() string {
	return "session not found: " + e.Session
}

// ErrDuplicateRecord is returned when a record ID is already stored in a session
type ErrDuplicateRecord struct {
	Session string
	ID      uint64
}

// Error implements the error interface
func (e ErrDuplicateRecord) Error() string {
	return fmt.Sprintf("record %d already stored in session %s", e.ID, e.Session)
}

// ErrStoreNotFound is returned when a store opened read-only does not exist
type ErrStoreNotFound struct {
	Path string
}

// Error implements the error interface
func (e ErrStoreNotFound) Error() string {
	return "record store not found: " + e.Path
}

// IsNotFound returns true if the error is ErrSessionNotFound or ErrStoreNotFound
func IsNotFound(err error) bool {
	_, okSession := err.(ErrSessionNotFound)
	_, okStore := err.(ErrStoreNotFound)
	return okSession || okStore
}
