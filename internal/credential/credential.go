// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential validates and canonicalizes unlock credentials.
//
// A credential is a shared secret shaped like a UUID
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, any case). Generated credentials are
// hexadecimal, but every group also accepts the letters g-z and the ASCII
// characters between 'Z' and 'a', which is what the browser unlock page has
// always let through. It is used only as password input for key derivation.
// The shape is checked here independently of whatever the caller already
// validated.
package credential

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// group is the case-folded [0-9A-z] class.
const group = "[0-9A-Za-z\\[\\\\\\]^_`]"

var shape = regexp.MustCompile(fmt.Sprintf("^%[1]s{8}-%[1]s{4}-%[1]s{4}-%[1]s{4}-%[1]s{12}$", group))

// Credential is a canonical (lowercase) credential.
// The zero value is not a valid credential.
type Credential struct {
	canonical string
}

// Parse checks the shape of s and returns its canonical lowercase form.
// Leading and trailing whitespace is ignored.
func Parse(s string) (Credential, error) {
	s = strings.TrimSpace(s)
	if !shape.MatchString(s) {
		return Credential{}, ErrMalformedCredentialShape
	}

	return Credential{canonical: strings.ToLower(s)}, nil
}

// Valid reports whether s has the credential shape.
func Valid(s string) bool {
	return shape.MatchString(strings.TrimSpace(s))
}

// Generate returns a fresh random credential.
func Generate() (Credential, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Credential{}, fmt.Errorf("generate credential: %w", err)
	}

	return Credential{canonical: id.String()}, nil
}

// Bytes returns the canonical credential as key-derivation input.
// A new slice is returned on every call.
func (c Credential) Bytes() []byte {
	return []byte(c.canonical)
}

// Reveal returns the canonical credential text. Only the sealer uses it, to
// print share links.
func (c Credential) Reveal() string {
	return c.canonical
}

// IsZero reports whether c was never successfully parsed or generated.
func (c Credential) IsZero() bool {
	return c.canonical == ""
}

// String implements fmt.Stringer with a redacted form, so a credential that
// ends up in a log line or an error message never exposes key material.
func (c Credential) String() string {
	if c.canonical == "" {
		return ""
	}
	return c.canonical[:2] + "******-****-****-****-************"
}

// MarshalText keeps credentials redacted when they are serialized by loggers
// or encoders.
func (c Credential) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
