// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withAccountID(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.AccountIDCtxKey, id))
}

func TestCreateVault_MalformedBody(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/vaults", strings.NewReader("not json")))
	rr := httptest.NewRecorder()

	h.createVault(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpsertVault_NoAccountInContext(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPut, "/api/v1/vaults/"+zeroUUID, strings.NewReader(`{}`)))
	req = withChiURLParam(req, "id", zeroUUID)
	rr := httptest.NewRecorder()

	h.upsertVault(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpsertVault_InvalidPathID(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPut, "/api/v1/vaults/not-a-uuid", strings.NewReader(`{}`)))
	req = withChiURLParam(req, "id", "not-a-uuid")
	req = withAccountID(req, uuid.New())
	rr := httptest.NewRecorder()

	h.upsertVault(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteVault_InvalidPathID(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodDelete, "/api/v1/vaults/not-a-uuid", nil))
	req = withChiURLParam(req, "id", "not-a-uuid")
	req = withAccountID(req, uuid.New())
	rr := httptest.NewRecorder()

	h.deleteVault(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListVaultsSince_InvalidSinceParam(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/api/v1/vaults?since=not-a-timestamp", nil))
	req = withAccountID(req, uuid.New())
	rr := httptest.NewRecorder()

	h.listVaultsSince(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListVaultsSince_NoAccountInContext(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/api/v1/vaults", nil))
	rr := httptest.NewRecorder()

	h.listVaultsSince(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
