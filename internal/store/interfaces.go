package store

import (
	"context"

	"github.com/MKhiriev/sealed-vitae/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BundleStorage persists an ordered bundle of encoded payloads. Order is
// significant: the unlock engine returns the first payload that opens.
type BundleStorage interface {
	// LoadBundle returns the stored payloads in bundle order. A bundle that
	// was never saved is returned as an empty slice.
	LoadBundle(ctx context.Context) ([]string, error)

	// SaveBundle replaces the stored bundle with payloads.
	SaveBundle(ctx context.Context, payloads []string) error
}

// PublicRecordStorage provides the record shown to visitors who have not
// unlocked anything.
type PublicRecordStorage interface {
	LoadPublic(ctx context.Context) (models.Record, error)
}

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
