// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter fetches the published bundle and public record from a
// remote HTTP origin, such as the static site the sealer output was
// deployed to.
//
// Non-2xx responses are reported as one of the errors in errors.go, such as
// [ErrNotPublished] for a 404 or [ErrOriginUnavailable] for a 5xx.
package adapter

import (
	"context"

	"github.com/MKhiriev/sealed-vitae/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_source_mock.go -package=mock

// BundleSource reads the bundle and the public record from a remote origin.
type BundleSource interface {
	// FetchBundle downloads the bundle and returns its payloads in order.
	FetchBundle(ctx context.Context) ([]string, error)

	// FetchPublic downloads the public record. Without a configured public
	// URL it returns an empty record.
	FetchPublic(ctx context.Context) (models.Record, error)
}
