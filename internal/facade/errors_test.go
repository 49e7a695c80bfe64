// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package facade

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keeper/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/MKhiriev/go-pass-keeper/internal/sync"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_KindBySentinel(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"cipher", fmt.Errorf("wrap: %w", crypto.ErrAuthenticationFailed), KindCipher},
		{"store", fmt.Errorf("wrap: %w", store.ErrExecutingQuery), KindStore},
		{"network", fmt.Errorf("wrap: %w", adapter.ErrNetworkUnavailable), KindNetwork},
		{"api", fmt.Errorf("wrap: %w", adapter.ErrInternalServerError), KindAPI},
		{"conflict", fmt.Errorf("wrap: %w", adapter.ErrConflict), KindConflict},
		{"auth", fmt.Errorf("wrap: %w", pake.ErrServerAuthFailed), KindAuth},
		{"not found", fmt.Errorf("wrap: %w", store.ErrNotFoundLocal), KindNotFound},
		{"sync busy", fmt.Errorf("wrap: %w", sync.ErrSyncBusy), KindSyncBusy},
		{"unrecognized", errors.New("boom"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			var ce *CoreError
			requireAs(t, got, &ce)
			assert.Equal(t, tc.want, ce.Kind)
			assert.ErrorIs(t, got, tc.err)
		})
	}
}

func TestClassify_AlreadyCoreErrorIsIdempotent(t *testing.T) {
	wrapped := NewError(KindAuth, errors.New("bad credentials"))
	got := Classify(wrapped)
	assert.Same(t, wrapped, got)
}

func TestNewError_NilErrReturnsNil(t *testing.T) {
	assert.Nil(t, NewError(KindStore, nil))
}

func TestNewError_CarriesStatusFromStatusError(t *testing.T) {
	statusErr := &adapter.StatusError{Status: 409, Body: "conflict", Err: adapter.ErrConflict}
	got := NewError(KindConflict, statusErr)

	var ce *CoreError
	requireAs(t, got, &ce)
	assert.Equal(t, 409, ce.Status)
	assert.Equal(t, "conflict", ce.Body)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "CipherError", KindCipher.String())
	assert.Equal(t, "SyncBusy", KindSyncBusy.String())
	assert.Equal(t, "UnknownError", Kind(99).String())
}

func requireAs(t *testing.T, err error, target **CoreError) {
	t.Helper()
	if !errors.As(err, target) {
		t.Fatalf("expected %v to be a *CoreError", err)
	}
}
