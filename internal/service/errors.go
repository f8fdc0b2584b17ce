package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoBundleSource    = errors.New("no bundle source configured")
	ErrBundleUnavailable = errors.New("bundle is unavailable")
)
