// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor. Sealed bundles only open
	// with the same count, so it must not change between releases.
	DefaultIterations = 600_000

	// KeySize is the derived key length (AES-256).
	KeySize = 32
	// SaltSize is the length of generated salts.
	SaltSize = 16
	// NonceSize is the AES-GCM nonce length.
	NonceSize = 12
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
	random     io.Reader
}

// Option tunes a [KeyChainService].
type Option func(*keyChainService)

// WithIterations overrides the PBKDF2 work factor. Payloads sealed with a
// non-default count cannot be opened by other implementations; use it in
// tests only.
func WithIterations(n int) Option {
	return func(k *keyChainService) {
		if n > 0 {
			k.iterations = n
		}
	}
}

// WithRandom replaces the CSPRNG used for salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(k *keyChainService) {
		if r != nil {
			k.random = r
		}
	}
}

// NewKeyChainService constructs a [KeyChainService] using PBKDF2-HMAC-SHA256
// with [DefaultIterations] and AES-256-GCM.
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return k.read(SaltSize)
}

// GenerateNonce implements [KeyChainService].
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	return k.read(NonceSize)
}

func (k *keyChainService) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(credential, salt []byte) []byte {
	return pbkdf2.Key(credential, salt, k.iterations, KeySize, sha256.New)
}

// Seal implements [KeyChainService].
func (k *keyChainService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService]. Wrong key and corrupted ciphertext are
// both reported as [ErrAuthenticationFailure].
func (k *keyChainService) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKey, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNonce, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
