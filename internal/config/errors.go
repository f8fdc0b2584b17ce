package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that zero or several bundle sources
	// are configured, or that the database driver is unknown.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote origin settings
	// (for example, negative retry count or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidUnlockConfigs indicates invalid unlock engine settings.
	ErrInvalidUnlockConfigs = errors.New("invalid unlock configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval with a remote bundle).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidNetAddress is returned by [NetAddress.Set] for anything that is not
// a usable listen address.
var ErrInvalidNetAddress = errors.New("need address in a form `host:port`")
