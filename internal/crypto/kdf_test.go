// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, minSaltLen)
	params := DefaultKDFParams()

	k1, err := DeriveKey([]byte("correct horse battery staple"), salt, params)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("correct horse battery staple"), salt, params)
	require.NoError(t, err)

	assert.Equal(t, k1.Expose(), k2.Expose())
	assert.Len(t, k1.Expose(), KeyLen)
}

func TestDeriveKey_DifferentSaltDifferentKey(t *testing.T) {
	params := DefaultKDFParams()
	saltA := bytes.Repeat([]byte{0xAA}, minSaltLen)
	saltB := bytes.Repeat([]byte{0xBB}, minSaltLen)

	kA, err := DeriveKey([]byte("passphrase"), saltA, params)
	require.NoError(t, err)
	kB, err := DeriveKey([]byte("passphrase"), saltB, params)
	require.NoError(t, err)

	assert.NotEqual(t, kA.Expose(), kB.Expose())
}

func TestDeriveKey_RejectsShortSalt(t *testing.T) {
	_, err := DeriveKey([]byte("passphrase"), []byte("short"), DefaultKDFParams())
	assert.ErrorIs(t, err, ErrInvalidKDFParams)
}

func TestDeriveKey_RejectsBadKeyLen(t *testing.T) {
	params := DefaultKDFParams()
	params.KeyLen = 16
	salt := bytes.Repeat([]byte{0x01}, minSaltLen)

	_, err := DeriveKey([]byte("passphrase"), salt, params)
	assert.ErrorIs(t, err, ErrInvalidKDFParams)
}

func TestDeriveKey_RejectsZeroCostParams(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, minSaltLen)

	params := DefaultKDFParams()
	params.TimeCost = 0
	_, err := DeriveKey([]byte("p"), salt, params)
	assert.ErrorIs(t, err, ErrInvalidKDFParams)

	params = DefaultKDFParams()
	params.MemoryKiB = 0
	_, err = DeriveKey([]byte("p"), salt, params)
	assert.ErrorIs(t, err, ErrInvalidKDFParams)

	params = DefaultKDFParams()
	params.Threads = 0
	_, err = DeriveKey([]byte("p"), salt, params)
	assert.ErrorIs(t, err, ErrInvalidKDFParams)
}
