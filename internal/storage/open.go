package storage

import (
	"fmt"

	"github.com/withobsrvr/recordctl/internal/config"
	"github.com/withobsrvr/recordctl/internal/utils/logger"
	"go.uber.org/zap"
)

// Open creates and opens the record store selected by settings.DatabaseURL
func Open(settings *config.Settings) (RecordStorage, error) {
	return open(settings, false)
}

// OpenReadOnly opens an existing record store for listing. A bolt file that
// does not exist yields ErrStoreNotFound instead of being created.
func OpenReadOnly(settings *config.Settings) (RecordStorage, error) {
	return open(settings, true)
}

func open(settings *config.Settings, readOnly bool) (RecordStorage, error) {
	scheme, path, err := settings.StoragePath()
	if err != nil {
		return nil, err
	}

	var store RecordStorage
	switch scheme {
	case config.SchemeMemory:
		store = NewMemoryStorage()
	case config.SchemeBolt:
		store = NewBoltDBStorage(&BoltOptions{Path: path, ReadOnly: readOnly})
	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", scheme)
	}

	if err := store.Open(); err != nil {
		return nil, err
	}
	logger.Named("storage").Debug("Record store ready", zap.String("scheme", scheme), zap.String("path", path))
	return store, nil
}
