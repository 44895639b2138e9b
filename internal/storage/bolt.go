package storage

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/withobsrvr/recordctl/internal/record"
	"github.com/withobsrvr/recordctl/internal/utils/logger"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const (
	// DefaultBoltFilePath is the default path for the BoltDB file
	DefaultBoltFilePath = "recordctl-records.db"

	// DefaultBoltFileMode is the default file mode for the BoltDB file
	DefaultBoltFileMode = 0600

	// DefaultBoltTimeout is the default timeout for acquiring the file lock
	DefaultBoltTimeout = 1 * time.Second
)

// sessionsBucket holds one nested bucket per session
var sessionsBucket = []byte("sessions")

// BoltDBStorage implements RecordStorage using BoltDB
type BoltDBStorage struct {
	db      *bolt.DB
	path    string
	options *BoltOptions
}

// BoltOptions configures the BoltDB storage
type BoltOptions struct {
	// Path to the BoltDB file
	Path string
	// File mode for the BoltDB file
	FileMode os.FileMode
	// Timeout for acquiring the file lock
	Timeout time.Duration
	// ReadOnly opens an existing file without creating or writing to it
	ReadOnly bool
}

// NewBoltDBStorage creates a new BoltDBStorage with the given options
func NewBoltDBStorage(opts *BoltOptions) *BoltDBStorage {
	if opts == nil {
		opts = &BoltOptions{}
	}
	if opts.Path == "" {
		opts.Path = DefaultBoltFilePath
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultBoltFileMode
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultBoltTimeout
	}

	return &BoltDBStorage{
		path:    opts.Path,
		options: opts,
	}
}

// Open initializes the BoltDB database
func (s *BoltDBStorage) Open() error {
	logger.Info("Opening BoltDB database", zap.String("path", s.path), zap.Bool("read_only", s.options.ReadOnly))

	if s.options.ReadOnly {
		if _, err := os.Stat(s.path); err != nil {
			if os.IsNotExist(err) {
				return ErrStoreNotFound{Path: s.path}
			}
			return fmt.Errorf("failed to stat database: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for database: %w", err)
	}

	db, err := bolt.Open(s.path, s.options.FileMode, &bolt.Options{
		Timeout:  s.options.Timeout,
		ReadOnly: s.options.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to open BoltDB: %w", err)
	}
	s.db = db

	if s.options.ReadOnly {
		return nil
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(sessionsBucket); err != nil {
			return fmt.Errorf("failed to create sessions bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

// Close closes the BoltDB database
func (s *BoltDBStorage) Close() error {
	if s.db != nil {
		logger.Debug("Closing BoltDB database", zap.String("path", s.path))
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Append stores a record in the session's bucket
func (s *BoltDBStorage) Append(ctx context.Context, session string, rec record.Record) error {
	logger.Debug("Storing record", zap.String("session", session), zap.Uint64("id", rec.ID))
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(sessionsBucket)
		if root == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		b, err := root.CreateBucketIfNotExists([]byte(session))
		if err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}

		key := idKey(rec.ID)
		if b.Get(key) != nil {
			return ErrDuplicateRecord{Session: session, ID: rec.ID}
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("failed to store record: %w", err)
		}
		return nil
	})
}

// List returns the records of a session ordered by ID
func (s *BoltDBStorage) List(ctx context.Context, session string) ([]record.Record, error) {
	var records []record.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(sessionsBucket)
		if root == nil {
			return ErrSessionNotFound{Session: session}
		}

		b := root.Bucket([]byte(session))
		if b == nil {
			return ErrSessionNotFound{Session: session}
		}

		records = []record.Record{}
		return b.ForEach(func(k, v []byte) error {
			var rec record.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record %d: %w", binary.BigEndian.Uint64(k), err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Sessions returns all session names in sorted order
func (s *BoltDBStorage) Sessions(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(sessionsBucket)
		if root == nil {
			return nil
		}

		// nested buckets are reported with a nil value
		return root.ForEach(func(k, v []byte) error {
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// idKey encodes a record ID so that byte order matches numeric order
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
