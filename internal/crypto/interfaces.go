package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic primitive used to seal and open
// payloads. It knows nothing about payload encoding, bundles or records.
//
// Scheme:
//
//	Salt, Nonce = GenerateSalt(), GenerateNonce()     (sealing only)
//	Key         = DeriveKey(credential, Salt)         PBKDF2-HMAC-SHA256
//	Ciphertext  = Seal(Key, Nonce, Plaintext)         AES-256-GCM
//	Plaintext   = Open(Key, Nonce, Ciphertext)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it travels
	// in front of every payload so that equal credentials yield different keys.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns a random 12-byte GCM nonce.
	GenerateNonce() ([]byte, error)

	// DeriveKey derives a 256-bit key from the credential bytes and the salt.
	// The result is deterministic for equal inputs.
	DeriveKey(credential, salt []byte) []byte

	// Seal encrypts and authenticates plaintext. The returned ciphertext
	// carries the 16-byte tag at its end.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open verifies the tag and decrypts ciphertext. Any mismatch yields an
	// error wrapping ErrAuthenticationFailure.
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}
