// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded records before the unlock engine hands
// them out. A record that fails validation is treated as an undecodable
// payload, never as an error surfaced to the caller.
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
