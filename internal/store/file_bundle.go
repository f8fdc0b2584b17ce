package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/models"
)

// fileBundleStorage keeps the bundle as a JSON file in the transport format,
// indented by two spaces.
type fileBundleStorage struct {
	path   string
	logger *logger.Logger
}

// NewFileBundleStorage constructs a [BundleStorage] over the JSON file at
// path. The file need not exist yet.
func NewFileBundleStorage(path string, logger *logger.Logger) BundleStorage {
	return &fileBundleStorage{
		path:   path,
		logger: logger,
	}
}

func (f *fileBundleStorage) LoadBundle(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Warn().
			Str("func", "fileBundleStorage.LoadBundle").
			Str("path", f.path).
			Msg("bundle file does not exist, using empty bundle")
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var entries []models.BundleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingBundle, err)
	}

	return models.PayloadsFromEntries(entries), nil
}

// SaveBundle creates the target's directory if needed, writes to a temporary
// file next to the target and renames it into place, so readers never see a
// partial bundle.
func (f *fileBundleStorage) SaveBundle(ctx context.Context, payloads []string) error {
	data, err := json.MarshalIndent(models.EntriesFromPayloads(payloads), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err := writeFileAtomic(f.path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "fileBundleStorage.SaveBundle").
		Str("path", f.path).
		Int("payloads", len(payloads)).
		Msg("bundle saved")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
