package service

import (
	"github.com/MKhiriev/sealed-vitae/internal/adapter"
	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/store"
	"github.com/MKhiriev/sealed-vitae/internal/unlock"
	"github.com/MKhiriev/sealed-vitae/models"
)

type Services struct {
	UnlockService  UnlockService
	AppInfoService AppInfoService
}

// NewServices wires the unlock service to whichever bundle source is
// configured: local storage wins over a remote source. The public record
// comes from the remote source only when a public URL is set.
func NewServices(storages *store.Storages, source adapter.BundleSource, engine *unlock.Engine, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	bundles, public, err := selectLoaders(storages, source, cfg.Adapter)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, err
	}

	unlockService := NewUnlockService(engine, bundles, public, cfg.Unlock.Parallelism > 1, logger)

	return &Services{
		UnlockService:  NewUnlockLoggingService(logger).Wrap(unlockService),
		AppInfoService: appInfo,
	}, nil
}

func selectLoaders(storages *store.Storages, source adapter.BundleSource, cfg config.Adapter) (BundleLoader, PublicLoader, error) {
	var public PublicLoader = store.NewStaticPublicRecordStorage(models.Record{})
	if storages != nil && storages.PublicRecordStorage != nil {
		public = storages.PublicRecordStorage
	}

	if storages != nil && storages.BundleStorage != nil {
		return storages.BundleStorage, public, nil
	}

	if source == nil {
		return nil, nil, ErrNoBundleSource
	}

	remote := remoteLoader{source: source}
	if cfg.PublicURL != "" {
		return remote, remote, nil
	}

	return remote, public, nil
}
