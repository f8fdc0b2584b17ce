package unlock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sealed-vitae/internal/credential"
	"github.com/MKhiriev/sealed-vitae/internal/payload"
	"github.com/MKhiriev/sealed-vitae/models"
)

// Seal validates record, serializes it to JSON and seals it under
// rawCredential. The credential is canonicalized first, so any casing of it
// opens the result.
func (e *Engine) Seal(ctx context.Context, rawCredential string, record models.Record) (string, error) {
	if err := e.validator.Validate(ctx, record); err != nil {
		return "", fmt.Errorf("validate record: %w", err)
	}

	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	defer clear(plaintext)

	return e.SealRaw(rawCredential, plaintext)
}

// SealRaw seals arbitrary plaintext bytes under rawCredential with a fresh
// salt and nonce, and returns the encoded payload.
func (e *Engine) SealRaw(rawCredential string, plaintext []byte) (string, error) {
	cred, err := credential.Parse(rawCredential)
	if err != nil {
		return "", err
	}

	salt, err := e.keyChain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := e.keyChain.GenerateNonce()
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	key := e.keyChain.DeriveKey(cred.Bytes(), salt)
	defer clear(key)

	ciphertext, err := e.keyChain.Seal(key, nonce, plaintext)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}

	return payload.Encode(salt, nonce, ciphertext)
}
