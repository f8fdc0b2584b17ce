// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
)

// BundleRefresher periodically reloads the bundle so that a redeployed
// static site or an updated database is picked up without a restart.
type BundleRefresher struct {
	target   Refresher
	interval time.Duration
	logger   *logger.Logger
}

func NewBundleRefresher(target Refresher, interval time.Duration, logger *logger.Logger) *BundleRefresher {
	return &BundleRefresher{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes once immediately and then on every tick until ctx is done.
// Refresh errors are logged and do not stop the loop.
func (b *BundleRefresher) Run(ctx context.Context) {
	if b.interval <= 0 {
		b.logger.Warn().Dur("interval", b.interval).Msg("bundle refresher disabled: non-positive interval")
		return
	}

	b.refresh(ctx)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("bundle refresher stopped")
			return
		case <-ticker.C:
			b.refresh(ctx)
		}
	}
}

func (b *BundleRefresher) refresh(ctx context.Context) {
	if err := b.target.Refresh(ctx); err != nil {
		b.logger.Err(err).Str("func", "BundleRefresher.Run").Msg("error refreshing bundle")
	}
}
