// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/unlock"
	"github.com/MKhiriev/sealed-vitae/models"
	"golang.org/x/sync/singleflight"
)

const (
	refreshKey = "bundle"

	// loadTimeout bounds one shared load, independent of the caller that
	// started it.
	loadTimeout = 30 * time.Second
)

type unlockService struct {
	engine   *unlock.Engine
	parallel bool

	bundles BundleLoader
	public  PublicLoader

	cache bundleCache
	group singleflight.Group

	logger *logger.Logger
}

// NewUnlockService builds an UnlockService over the given loaders. The bundle
// is loaded lazily on first use and afterwards only by Refresh. With parallel
// set, trials run through [unlock.Engine.UnlockParallel].
func NewUnlockService(engine *unlock.Engine, bundles BundleLoader, public PublicLoader, parallel bool, logger *logger.Logger) UnlockService {
	return &unlockService{
		engine:   engine,
		parallel: parallel,
		bundles:  bundles,
		public:   public,
		logger:   logger,
	}
}

func (s *unlockService) Unlock(ctx context.Context, credential string) (models.View, error) {
	bundle, public, err := s.snapshot(ctx)
	if err != nil {
		return models.View{}, err
	}

	var result unlock.Result
	if s.parallel {
		result, err = s.engine.UnlockParallel(ctx, credential, bundle)
	} else {
		result, err = s.engine.Unlock(ctx, credential, bundle)
	}
	if err != nil {
		return models.View{}, err
	}

	if record, ok := result.Record(); ok {
		return models.View{Private: true, Record: record}, nil
	}

	return models.View{Record: public}, nil
}

func (s *unlockService) Public(ctx context.Context) (models.View, error) {
	_, public, err := s.snapshot(ctx)
	if err != nil {
		return models.View{}, err
	}

	return models.View{Record: public}, nil
}

// Refresh reloads both sources. Concurrent callers share a single load, which
// keeps running when the caller that started it gives up. A failing public
// source keeps the previously loaded public record; a failing bundle source
// keeps the whole previous snapshot.
func (s *unlockService) Refresh(ctx context.Context) error {
	ch := s.group.DoChan(refreshKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return nil, s.load(loadCtx)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *unlockService) load(ctx context.Context) error {
	bundle, err := s.bundles.LoadBundle(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "unlockService.load").Msg("error loading bundle")
		return fmt.Errorf("%w: %w", ErrBundleUnavailable, err)
	}

	public, err := s.public.LoadPublic(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "unlockService.load").Msg("error loading public record, keeping previous one")
		public = s.cache.publicRecord()
	}

	s.cache.set(bundle, public)
	s.logger.Debug().Int("entries", len(bundle)).Msg("bundle loaded")

	return nil
}

func (s *unlockService) snapshot(ctx context.Context) ([]string, models.Record, error) {
	if bundle, public, ok := s.cache.get(); ok {
		return bundle, public, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, models.Record{}, err
	}

	bundle, public, _ := s.cache.get()
	return bundle, public, nil
}
