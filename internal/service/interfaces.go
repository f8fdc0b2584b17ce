package service

import (
	"context"

	"github.com/MKhiriev/sealed-vitae/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UnlockService turns a visitor credential into the view the renderer should
// show. A failed unlock is not an error: it yields the public view.
type UnlockService interface {
	Unlock(ctx context.Context, credential string) (models.View, error)
	Public(ctx context.Context) (models.View, error)

	// Refresh reloads the bundle and the public record from their source.
	Refresh(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UnlockServiceWrapper defines middleware composition for UnlockService.
type UnlockServiceWrapper interface {
	Wrap(UnlockService) UnlockService
}

// BundleLoader supplies the ordered list of encoded payloads.
type BundleLoader interface {
	LoadBundle(ctx context.Context) ([]string, error)
}

// PublicLoader supplies the record shown when nothing is unlocked.
type PublicLoader interface {
	LoadPublic(ctx context.Context) (models.Record, error)
}
