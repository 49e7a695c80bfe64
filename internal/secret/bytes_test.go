// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes_ExposeRoundTrips(t *testing.T) {
	b := New([]byte("master-key-material"))
	assert.Equal(t, "master-key-material", string(b.Expose()))
	assert.Equal(t, 19, b.Len())
}

func TestBytes_ZeroOverwritesBackingArray(t *testing.T) {
	raw := []byte("top-secret-passphrase")
	b := New(raw)

	b.Zero()

	for _, c := range raw {
		require.Zero(t, c)
	}
	assert.Equal(t, 0, b.Len())
}

func TestBytes_StringNeverLeaksContent(t *testing.T) {
	b := NewString("hunter2")
	assert.Equal(t, "[REDACTED]", b.String())
	assert.False(t, strings.Contains(b.String(), "hunter2"))
}

func TestBytes_ZeroIsIdempotent(t *testing.T) {
	b := New([]byte("x"))
	b.Zero()
	assert.NotPanics(t, func() { b.Zero() })
}
