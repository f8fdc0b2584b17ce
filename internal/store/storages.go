package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/models"
)

// Storages groups the local persistence backends.
type Storages struct {
	BundleStorage       BundleStorage
	PublicRecordStorage PublicRecordStorage

	// db is non-nil when the bundle lives in a database.
	db *DB
}

// NewStorages builds the configured local storages. A database DSN takes
// precedence over a bundle file. When neither is set, BundleStorage is nil
// and the caller is expected to use a remote source.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		PublicRecordStorage: NewStaticPublicRecordStorage(models.Record{}),
	}

	if cfg.Files.PublicPath != "" {
		storages.PublicRecordStorage = NewFilePublicRecordStorage(cfg.Files.PublicPath)
	}

	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		storages.db = db
		storages.BundleStorage = NewSQLBundleStorage(db, log)
	case cfg.Files.BundlePath != "":
		storages.BundleStorage = NewFileBundleStorage(cfg.Files.BundlePath, log)
	}

	return storages, nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
