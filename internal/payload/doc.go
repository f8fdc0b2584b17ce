// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payload converts sealed payloads between their transport form and
// their structural parts.
//
// A sealed payload is the standard Base64 encoding (padding optional on input) of
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext with GCM tag
//
// The package never looks inside the ciphertext region: the authentication tag
// is interpreted only by the AEAD step in [github.com/MKhiriev/sealed-vitae/internal/crypto].
package payload
