// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// minSaltLen is the smallest salt this package accepts. Argon2id does not
// itself enforce a minimum, but a short salt defeats the point of salting.
const minSaltLen = 16

// KeyLen is the only key length DeriveKey ever produces: a ChaCha20-Poly1305
// key is always 32 bytes.
const KeyLen = 32

// KDFParams configures the Argon2id work factor. The zero value is not
// usable; call DefaultKDFParams for sane defaults.
type KDFParams struct {
	// TimeCost is the number of Argon2id passes over memory.
	TimeCost uint32
	// MemoryKiB is the amount of memory used, in kibibytes.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the length of the derived key in bytes. Only 32 is accepted.
	KeyLen uint32
}

// DefaultKDFParams returns the baseline work factor: 64 MiB of memory, 3
// passes, single-threaded, 32-byte output.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		TimeCost:  3,
		MemoryKiB: 64 * 1024,
		Threads:   1,
		KeyLen:    KeyLen,
	}
}

func (p KDFParams) validate(saltLen int) error {
	if p.KeyLen != KeyLen {
		return fmt.Errorf("%w: key length must be %d, got %d", ErrInvalidKDFParams, KeyLen, p.KeyLen)
	}
	if p.TimeCost == 0 || p.MemoryKiB == 0 || p.Threads == 0 {
		return fmt.Errorf("%w: time, memory and threads must be non-zero", ErrInvalidKDFParams)
	}
	if saltLen < minSaltLen {
		return fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidKDFParams, minSaltLen, saltLen)
	}
	return nil
}

// DeriveKey turns passphrase and salt into a master key under the given
// Argon2id parameters. The returned key is wrapped in secret.Bytes; the
// caller owns its lifetime and must Zero it when done.
func DeriveKey(passphrase, salt []byte, params KDFParams) (secret.Bytes, error) {
	if err := params.validate(len(salt)); err != nil {
		return secret.Bytes{}, err
	}

	key := argon2.IDKey(passphrase, salt, params.TimeCost, params.MemoryKiB, params.Threads, params.KeyLen)
	return secret.New(key), nil
}
