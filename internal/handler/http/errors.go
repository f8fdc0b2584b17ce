// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when the request body is not the expected
	// JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
