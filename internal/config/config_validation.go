// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if n := cfg.bundleSources(); n != 1 {
		return fmt.Errorf("%w: exactly one bundle source must be set, got %d", ErrInvalidStorageConfigs, n)
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Unlock.Parallelism < 0 {
		return fmt.Errorf("%w: negative parallelism", ErrInvalidUnlockConfigs)
	}

	if cfg.Adapter.BundleURL != "" {
		if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
			return ErrInvalidAdapterConfigs
		}
		if cfg.Workers.RefreshInterval <= 0 {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}

func (cfg *StructuredConfig) bundleSources() int {
	n := 0
	for _, source := range []string{cfg.Storage.DB.DSN, cfg.Storage.Files.BundlePath, cfg.Adapter.BundleURL} {
		if source != "" {
			n++
		}
	}
	return n
}
