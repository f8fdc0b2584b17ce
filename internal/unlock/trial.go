// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package unlock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sealed-vitae/internal/credential"
	"github.com/MKhiriev/sealed-vitae/internal/payload"
	"github.com/MKhiriev/sealed-vitae/models"
)

// trialOutcome is the result of trying one credential against one payload.
type trialOutcome int

const (
	// outcomeMalformed: the payload is not valid Base64 or too short.
	outcomeMalformed trialOutcome = iota
	// outcomeAuthFailed: the GCM tag did not verify under the derived key.
	outcomeAuthFailed
	// outcomeParseFailed: decryption succeeded but the plaintext is not a
	// valid record. Treated exactly like a wrong key.
	outcomeParseFailed
	// outcomeUnlocked: the payload opened and parsed.
	outcomeUnlocked
)

func (o trialOutcome) String() string {
	switch o {
	case outcomeMalformed:
		return "malformed"
	case outcomeAuthFailed:
		return "auth_failed"
	case outcomeParseFailed:
		return "parse_failed"
	case outcomeUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// trial runs one credential against one encoded payload. The derived key and
// the plaintext buffer are wiped before it returns.
func (e *Engine) trial(ctx context.Context, cred credential.Credential, encoded string) (models.Record, trialOutcome) {
	parts, err := payload.Decode(encoded)
	if err != nil {
		return models.Record{}, outcomeMalformed
	}

	key := e.keyChain.DeriveKey(cred.Bytes(), parts.Salt)
	defer clear(key)

	plaintext, err := e.keyChain.Open(key, parts.Nonce, parts.Ciphertext)
	if err != nil {
		return models.Record{}, outcomeAuthFailed
	}
	defer clear(plaintext)

	record, err := parseRecord(plaintext)
	if err != nil {
		return models.Record{}, outcomeParseFailed
	}

	return record, outcomeUnlocked
}

// parseRecord decodes plaintext into a record. The top-level value must be a
// JSON object; unknown fields are ignored. Content rules are left to Seal so
// that any record a sealer produced can be opened.
func parseRecord(plaintext []byte) (models.Record, error) {
	trimmed := bytes.TrimSpace(plaintext)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Record{}, errPlaintextNotObject
	}

	var record models.Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return models.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}

	return record, nil
}
