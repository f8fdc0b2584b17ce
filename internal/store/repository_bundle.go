// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
)

const (
	maxLoadAttempts  = 3
	defaultRetryWait = 200 * time.Millisecond
)

// sqlBundleStorage is the SQL-backed implementation of [BundleStorage]. The
// bundle lives in the "payloads" table, one row per payload, ordered by
// position.
type sqlBundleStorage struct {
	*DB
	logger    *logger.Logger
	retryWait time.Duration
}

// NewSQLBundleStorage constructs a [BundleStorage] backed by db. The schema
// must already be migrated.
func NewSQLBundleStorage(db *DB, logger *logger.Logger) BundleStorage {
	return &sqlBundleStorage{
		DB:        db,
		logger:    logger,
		retryWait: defaultRetryWait,
	}
}

// LoadBundle reads the bundle. Errors the classifier marks as retryable are
// retried up to maxLoadAttempts times with a linearly growing pause.
func (s *sqlBundleStorage) LoadBundle(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxLoadAttempts; attempt++ {
		bundle, err := s.loadBundle(ctx)
		if err == nil {
			return bundle, nil
		}
		lastErr = err

		if attempt == maxLoadAttempts || s.classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).
			Str("func", "sqlBundleStorage.LoadBundle").
			Int("attempt", attempt).
			Msg("retryable error while loading bundle")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * s.retryWait):
		}
	}

	return nil, lastErr
}

func (s *sqlBundleStorage) loadBundle(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadBundleQuery(s.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlBundleStorage.loadBundle").
			Msg("failed to execute query for loading bundle")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bundle := make([]string, 0, 16)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bundle = append(bundle, payload)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "sqlBundleStorage.loadBundle").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bundle, nil
}

// SaveBundle replaces the stored bundle in a single transaction.
func (s *sqlBundleStorage) SaveBundle(ctx context.Context, payloads []string) (err error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "sqlBundleStorage.SaveBundle").Msg("rollback failed")
			}
		}
	}()

	query, args, err := buildDeleteBundleQuery(s.builder())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(payloads) > 0 {
		query, args, err = buildInsertBundleQuery(s.builder(), payloads)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "sqlBundleStorage.SaveBundle").
		Int("payloads", len(payloads)).
		Msg("bundle saved")
	return nil
}

func (s *sqlBundleStorage) classify(err error) ErrorClassification {
	if s.errorClassificator == nil {
		return NonRetryable
	}
	return s.errorClassificator.Classify(err)
}
