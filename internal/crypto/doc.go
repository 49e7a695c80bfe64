// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the two cryptographic primitives the rest of the
// core builds on:
//
//   - DeriveKey: Argon2id key derivation, turning a passphrase and salt into a
//     32-byte master key.
//   - Encrypt / Decrypt: ChaCha20-Poly1305 authenticated encryption of a byte
//     slice under a 32-byte key, with a random 96-bit nonce prepended to the
//     ciphertext.
//
// Neither function knows anything about vaults, records, or the key
// hierarchy that wraps one key with another — that lives in package vault.
// This package only ever deals in raw key material and opaque byte slices.
package crypto
