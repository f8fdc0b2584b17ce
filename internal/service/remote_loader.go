package service

import (
	"context"

	"github.com/MKhiriev/sealed-vitae/internal/adapter"
	"github.com/MKhiriev/sealed-vitae/models"
)

// remoteLoader serves both loaders from a static-site bundle source.
type remoteLoader struct {
	source adapter.BundleSource
}

func (r remoteLoader) LoadBundle(ctx context.Context) ([]string, error) {
	return r.source.FetchBundle(ctx)
}

func (r remoteLoader) LoadPublic(ctx context.Context) (models.Record, error) {
	return r.source.FetchPublic(ctx)
}
