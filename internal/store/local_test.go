// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) LocalStore {
	t.Helper()
	s, err := OpenLocalStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLocalStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "vault:1", []byte("payload")))

	got, err := s.Get(ctx, treeData, "vault:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestLocalStore_GetMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	_, err := s.Get(ctx, treeData, "vault:missing")
	assert.ErrorIs(t, err, ErrNotFoundLocal)
}

func TestLocalStore_PutOverwritesExistingKey(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "vault:1", []byte("v1")))
	require.NoError(t, s.Put(ctx, treeData, "vault:1", []byte("v2")))

	got, err := s.Get(ctx, treeData, "vault:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestLocalStore_ScanPrefixOrderedByInsertion(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "record:v1:a", []byte("a")))
	require.NoError(t, s.Put(ctx, treeData, "record:v1:b", []byte("b")))
	require.NoError(t, s.Put(ctx, treeData, "vault:other", []byte("x")))

	got, err := s.ScanPrefix(ctx, treeData, "record:v1:")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("a"), got[0])
	assert.Equal(t, []byte("b"), got[1])
}

func TestLocalStore_ScanPrefixDoesNotMatchUnderscoreWildcard(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "record:v_1:a", []byte("a")))
	require.NoError(t, s.Put(ctx, treeData, "record:vX1:a", []byte("b")))

	got, err := s.ScanPrefix(ctx, treeData, "record:v_1:")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("a"), got[0])
}

func TestLocalStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "vault:1", []byte("payload")))
	require.NoError(t, s.Delete(ctx, treeData, "vault:1"))

	_, err := s.Get(ctx, treeData, "vault:1")
	assert.ErrorIs(t, err, ErrNotFoundLocal)
}

func TestLocalStore_DeleteMissingIsNotError(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)
	assert.NoError(t, s.Delete(ctx, treeData, "vault:missing"))
}

func TestLocalStore_PutWithOutboxWritesBothTrees(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.PutWithOutbox(ctx, "vault:1", []byte("v"), "outbox:1:a", []byte("o")))

	data, err := s.Get(ctx, treeData, "vault:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	outbox, err := s.Get(ctx, treeOutbox, "outbox:1:a")
	require.NoError(t, err)
	assert.Equal(t, []byte("o"), outbox)
}

func TestLocalStore_DeleteWithOutboxRemovesDataKeepsOutbox(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStore(t)

	require.NoError(t, s.Put(ctx, treeData, "vault:1", []byte("v")))
	require.NoError(t, s.DeleteWithOutbox(ctx, "vault:1", "outbox:2:b", []byte("o")))

	_, err := s.Get(ctx, treeData, "vault:1")
	assert.ErrorIs(t, err, ErrNotFoundLocal)

	outbox, err := s.Get(ctx, treeOutbox, "outbox:2:b")
	require.NoError(t, err)
	assert.Equal(t, []byte("o"), outbox)
}
