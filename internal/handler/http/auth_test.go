// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterStart_MalformedBody(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/register/start", strings.NewReader("not json")))
	rr := httptest.NewRecorder()

	h.registerStart(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterFinish_MalformedBody(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/register/finish", strings.NewReader("not json")))
	rr := httptest.NewRecorder()

	h.registerFinish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterFinish_NoPendingHandshake(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/register/finish",
		strings.NewReader(`{"email":"nobody@example.com","salt":"c2FsdA==","client_finish":"Zg=="}`)))
	rr := httptest.NewRecorder()

	h.registerFinish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginStart_MalformedBody(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/start", strings.NewReader("not json")))
	rr := httptest.NewRecorder()

	h.loginStart(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginFinish_MalformedBody(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/finish", strings.NewReader("not json")))
	rr := httptest.NewRecorder()

	h.loginFinish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginFinish_NoPendingHandshake(t *testing.T) {
	h := testHandler(t)
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/finish",
		strings.NewReader(`{"email":"nobody@example.com","client_finish":"Zg=="}`)))
	rr := httptest.NewRecorder()

	h.loginFinish(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
