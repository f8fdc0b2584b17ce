// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// SaltSize is the length of the per-payload KDF salt.
	SaltSize = 16
	// NonceSize is the length of the AES-GCM nonce.
	NonceSize = 12
	// HeaderSize is the minimum decoded length of a well-formed payload.
	HeaderSize = SaltSize + NonceSize
)

// Parts holds the three structural fields of a sealed payload.
// Ciphertext includes the trailing authentication tag.
type Parts struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// Decode splits a Base64-encoded payload into salt, nonce and ciphertext.
//
// Decoding is as lenient as a browser's atob: ASCII whitespace anywhere is
// ignored and trailing padding may be omitted. The returned slices do not
// alias each other's capacity, so callers may append to any of them safely.
func Decode(encoded string) (Parts, error) {
	blob, err := decodeBase64(encoded)
	if err != nil {
		return Parts{}, fmt.Errorf("%w: decode base64: %w", ErrMalformedPayload, err)
	}

	if len(blob) < HeaderSize {
		return Parts{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedPayload, len(blob), HeaderSize)
	}

	return Parts{
		Salt:       blob[:SaltSize:SaltSize],
		Nonce:      blob[SaltSize:HeaderSize:HeaderSize],
		Ciphertext: blob[HeaderSize:],
	}, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)

	// at most two pad characters, and only on a full quantum
	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}

	return base64.RawStdEncoding.DecodeString(s)
}

// Encode is the inverse of [Decode]. Output is always padded.
func Encode(salt, nonce, ciphertext []byte) (string, error) {
	if len(salt) != SaltSize {
		return "", fmt.Errorf("%w: salt is %d bytes, want %d", ErrMalformedPayload, len(salt), SaltSize)
	}
	if len(nonce) != NonceSize {
		return "", fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformedPayload, len(nonce), NonceSize)
	}

	blob := make([]byte, 0, HeaderSize+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Encode is a convenience wrapper around the package-level [Encode].
func (p Parts) Encode() (string, error) {
	return Encode(p.Salt, p.Nonce, p.Ciphertext)
}
