// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sealer turns a manifest of (credential, record file) pairs into a
// bundle of payloads plus the share links that go with them.
package sealer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sealed-vitae/internal/credential"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/models"
)

// Engine seals one record under one credential.
type Engine interface {
	Seal(ctx context.Context, rawCredential string, record models.Record) (string, error)
}

// Sealed is one successfully sealed manifest entry.
type Sealed struct {
	Credential credential.Credential
	Payload    string
}

type Sealer struct {
	engine  Engine
	baseDir string
	logger  *logger.Logger
}

// New returns a Sealer resolving relative record paths against baseDir.
func New(engine Engine, baseDir string, logger *logger.Logger) *Sealer {
	return &Sealer{
		engine:  engine,
		baseDir: baseDir,
		logger:  logger,
	}
}

// LoadManifest reads a JSON array of [models.ManifestEntry].
func LoadManifest(path string) ([]models.ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingManifest, err)
	}

	var entries []models.ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingManifest, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyManifest
	}

	return entries, nil
}

// SealManifest seals every entry in manifest order. Entries whose record file
// does not exist are skipped with a warning; any other problem aborts the run
// so that a half-valid bundle is never written.
func (s *Sealer) SealManifest(ctx context.Context, entries []models.ManifestEntry) ([]Sealed, error) {
	sealed := make([]Sealed, 0, len(entries))

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cred, err := resolveCredential(entry.Credential)
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrInvalidEntry, i, err)
		}

		record, err := s.readRecord(entry.Record)
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("record", entry.Record).Msg("record file not found, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrInvalidEntry, i, err)
		}

		payload, err := s.engine.Seal(ctx, cred.Reveal(), record)
		if err != nil {
			return nil, fmt.Errorf("%w #%d: %w", ErrInvalidEntry, i, err)
		}

		s.logger.Info().Int("entry", i).Stringer("credential", cred).Msg("record sealed")
		sealed = append(sealed, Sealed{Credential: cred, Payload: payload})
	}

	return sealed, nil
}

func (s *Sealer) readRecord(path string) (models.Record, error) {
	if path == "" {
		return models.Record{}, errors.New("record path is empty")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Record{}, err
	}

	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return models.Record{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return record, nil
}

func resolveCredential(raw string) (credential.Credential, error) {
	if strings.TrimSpace(raw) == "" {
		return credential.Generate()
	}
	return credential.Parse(raw)
}

// Payloads returns the bundle in manifest order.
func Payloads(sealed []Sealed) []string {
	payloads := make([]string, 0, len(sealed))
	for _, s := range sealed {
		payloads = append(payloads, s.Payload)
	}
	return payloads
}

// ShareLink puts the credential in the URL fragment, which browsers never
// send to the server.
func ShareLink(baseURL string, cred credential.Credential) string {
	return strings.TrimRight(baseURL, "/") + "/#" + cred.Reveal()
}
