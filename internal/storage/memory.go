package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/withobsrvr/recordctl/internal/record"
	"github.com/withobsrvr/recordctl/internal/utils/logger"
	"go.uber.org/zap"
)

// MemoryStorage is an in-memory implementation of RecordStorage
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]map[uint64]record.Record
}

// NewMemoryStorage creates a new in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]map[uint64]record.Record),
	}
}

// Open initializes the storage
func (s *MemoryStorage) Open() error {
	logger.Debug("Opening memory storage")
	return nil
}

// Close closes the storage
func (s *MemoryStorage) Close() error {
	logger.Debug("Closing memory storage")
	return nil
}

// Append stores a record in the session
func (s *MemoryStorage) Append(ctx context.Context, session string, rec record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.sessions[session]
	if !ok {
		records = make(map[uint64]record.Record)
		s.sessions[session] = records
	}
	if _, exists := records[rec.ID]; exists {
		return ErrDuplicateRecord{Session: session, ID: rec.ID}
	}

	logger.Debug("Storing record in memory", zap.String("session", session), zap.Uint64("id", rec.ID))
	records[rec.ID] = rec
	return nil
}

// List returns the records of a session ordered by ID
func (s *MemoryStorage) List(ctx context.Context, session string) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.sessions[session]
	if !ok {
		return nil, ErrSessionNotFound{Session: session}
	}

	out := make([]record.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Sessions returns all session names in sorted order
func (s *MemoryStorage) Sessions(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
