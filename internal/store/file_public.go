package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/sealed-vitae/models"
)

type filePublicRecordStorage struct {
	path string
}

// NewFilePublicRecordStorage reads the public record from a JSON file. A
// missing file yields an empty record.
func NewFilePublicRecordStorage(path string) PublicRecordStorage {
	return &filePublicRecordStorage{path: path}
}

func (f *filePublicRecordStorage) LoadPublic(_ context.Context) (models.Record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Record{}, nil
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return record, nil
}

type staticPublicRecordStorage struct {
	record models.Record
}

// NewStaticPublicRecordStorage always returns record.
func NewStaticPublicRecordStorage(record models.Record) PublicRecordStorage {
	return &staticPublicRecordStorage{record: record}
}

func (s *staticPublicRecordStorage) LoadPublic(context.Context) (models.Record, error) {
	return s.record, nil
}
