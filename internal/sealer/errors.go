package sealer

import "errors"

var (
	ErrReadingManifest  = errors.New("error reading manifest")
	ErrDecodingManifest = errors.New("error decoding manifest")
	ErrEmptyManifest    = errors.New("manifest has no entries")
	ErrInvalidEntry     = errors.New("invalid manifest entry")
)
