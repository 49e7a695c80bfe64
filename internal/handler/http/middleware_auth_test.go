// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(nil, nil, nil, config.App{
		TokenSignKey:  "secret-key",
		TokenIssuer:   "go-pass-keeper",
		TokenDuration: time.Hour,
		Version:       "test",
	}, logger.Nop())
}

func withNopLogger(r *http.Request) *http.Request {
	ctx := logger.Nop().WithContext(r.Context())
	return r.WithContext(ctx)
}

func TestAuthMiddleware_Success(t *testing.T) {
	h := testHandler(t)
	accountID := uuid.New()
	token, err := utils.GenerateJWTToken(h.tokenIssuer, accountID, h.tokenDuration, h.tokenSignKey)
	assert.NoError(t, err)

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetAccountIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := withNopLogger(httptest.NewRequest("GET", "/", nil))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, accountID, seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := testHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := withNopLogger(httptest.NewRequest("GET", "/", nil))
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := testHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := withNopLogger(httptest.NewRequest("GET", "/", nil))
	req.Header.Set("Authorization", "justatoken")
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_InvalidSignature(t *testing.T) {
	h := testHandler(t)
	token, err := utils.GenerateJWTToken(h.tokenIssuer, uuid.New(), h.tokenDuration, "wrong-key")
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := withNopLogger(httptest.NewRequest("GET", "/", nil))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
