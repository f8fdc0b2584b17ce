// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package unlock

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/sealed-vitae/internal/credential"
	"github.com/MKhiriev/sealed-vitae/internal/crypto"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/validators"
	"github.com/MKhiriev/sealed-vitae/models"
)

// Engine runs blind unlock attempts. Build it with [NewEngine].
type Engine struct {
	keyChain    crypto.KeyChainService
	validator   validators.Validator // applied by Seal only
	logger      *logger.Logger
	parallelism int
}

// Option tunes an [Engine].
type Option func(*Engine)

// WithParallelism bounds the number of concurrent trials used by
// [Engine.UnlockParallel]. Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.parallelism = n
		}
	}
}

// NewEngine constructs an [Engine]. UnlockParallel defaults to GOMAXPROCS
// concurrent trials.
func NewEngine(keyChain crypto.KeyChainService, validator validators.Validator, logger *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		keyChain:    keyChain,
		validator:   validator,
		logger:      logger,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Unlock tries rawCredential against every payload of bundle in order and
// returns the first record that opens.
//
// A credential without the expected shape returns NotUnlocked before any
// payload is looked at. Malformed payloads, authentication failures and
// unparseable plaintext all just advance to the next payload. The returned
// error is non-nil only when ctx is done; the result is then NotUnlocked.
func (e *Engine) Unlock(ctx context.Context, rawCredential string, bundle []string) (Result, error) {
	cred, err := credential.Parse(rawCredential)
	if err != nil {
		e.logger.Debug().Msg("credential shape rejected")
		return NotUnlocked(), nil
	}

	return e.unlockSequential(ctx, cred, bundle)
}

func (e *Engine) unlockSequential(ctx context.Context, cred credential.Credential, bundle []string) (Result, error) {
	for i, encoded := range bundle {
		if err := ctx.Err(); err != nil {
			return NotUnlocked(), err
		}

		record, outcome := e.trial(ctx, cred, encoded)
		e.logTrial(i, outcome)

		if outcome == outcomeUnlocked {
			return Unlocked(record), nil
		}
	}

	e.logger.Debug().Int("payloads", len(bundle)).Msg("bundle exhausted")
	return NotUnlocked(), nil
}

// UnlockParallel has the same contract as [Engine.Unlock] but runs trials on
// a bounded pool of goroutines. When several payloads open under the same
// credential the one with the lowest index is returned, exactly as the
// sequential loop would. Payloads after an already matched index are not
// started.
func (e *Engine) UnlockParallel(ctx context.Context, rawCredential string, bundle []string) (Result, error) {
	cred, err := credential.Parse(rawCredential)
	if err != nil {
		e.logger.Debug().Msg("credential shape rejected")
		return NotUnlocked(), nil
	}

	if e.parallelism <= 1 || len(bundle) <= 1 {
		return e.unlockSequential(ctx, cred, bundle)
	}

	var (
		mu        sync.Mutex
		bestIndex = len(bundle)
		best      models.Record
	)
	matchedBefore := func(i int) bool {
		mu.Lock()
		defer mu.Unlock()
		return bestIndex < i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, encoded := range bundle {
		if gctx.Err() != nil || matchedBefore(i) {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if matchedBefore(i) {
				return nil
			}

			record, outcome := e.trial(gctx, cred, encoded)
			e.logTrial(i, outcome)

			if outcome == outcomeUnlocked {
				mu.Lock()
				if i < bestIndex {
					bestIndex, best = i, record
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return NotUnlocked(), err
	}
	if err := ctx.Err(); err != nil {
		return NotUnlocked(), err
	}

	if bestIndex < len(bundle) {
		return Unlocked(best), nil
	}

	e.logger.Debug().Int("payloads", len(bundle)).Msg("bundle exhausted")
	return NotUnlocked(), nil
}

func (e *Engine) logTrial(index int, outcome trialOutcome) {
	e.logger.Debug().
		Int("entry", index).
		Stringer("outcome", outcome).
		Msg("trial finished")
}
