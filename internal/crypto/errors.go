package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned by Open when the key is wrong or the
	// ciphertext was altered. Callers cannot tell the two apart.
	ErrAuthenticationFailure = errors.New("authentication failed")

	// ErrInvalidKey is returned when a key is not 32 bytes long.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrInvalidNonce is returned when a nonce is not 12 bytes long.
	ErrInvalidNonce = errors.New("invalid nonce length")
)
