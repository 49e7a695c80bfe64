// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pake"
	"github.com/MKhiriev/go-pass-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError_KnownSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"account exists", store.ErrAccountExists, http.StatusConflict},
		{"account not found", store.ErrAccountNotFound, http.StatusUnauthorized},
		{"vault not found", store.ErrVaultNotFound, http.StatusNotFound},
		{"record not found", store.ErrRecordNotFound, http.StatusNotFound},
		{"owned by another account", store.ErrOwnedByAnotherAccount, http.StatusConflict},
		{"invalid pake message", pake.ErrInvalidMessage, http.StatusBadRequest},
		{"pake tag mismatch", pake.ErrTagMismatch, http.StatusUnauthorized},
		{"handshake expired", errHandshakeExpired, http.StatusBadRequest},
		{"bad json", errBadJSON, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.status, resp.status)
		})
	}
}

func TestResponseFromError_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), store.ErrVaultNotFound)
	resp := responseFromError(wrapped)
	assert.Equal(t, http.StatusNotFound, resp.status)
}

func TestResponseFromError_Unknown(t *testing.T) {
	resp := responseFromError(errors.New("some unmapped failure"))
	assert.Equal(t, http.StatusInternalServerError, resp.status)
}

func TestRespondError_WritesMappedStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	respondError(rr, logger.Nop(), store.ErrVaultNotFound)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
