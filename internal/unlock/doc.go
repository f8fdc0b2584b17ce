// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package unlock implements blind unlocking: given a credential and a bundle
// of independently sealed payloads, find the payload (if any) that the
// credential opens, without any index or hint.
//
// For every payload, in bundle order, the engine
//
//  1. decodes salt ‖ nonce ‖ ciphertext (package payload);
//  2. derives a key with PBKDF2-HMAC-SHA256 from the canonical credential and
//     the payload's salt;
//  3. opens the ciphertext with AES-256-GCM;
//  4. parses the plaintext as a JSON object into a [models.Record].
//
// The first payload that passes all four steps wins. Content rules such as
// date formats are checked only when sealing. A failure at any step
// only moves on to the next payload; the caller sees either Unlocked(record)
// or NotUnlocked and never learns which step failed.
//
// The engine holds no mutable state and performs no I/O. It is safe for
// concurrent use.
package unlock
