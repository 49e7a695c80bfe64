// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	h := NewHandler(nil, nil, nil, config.App{
		TokenSignKey:  "key",
		TokenIssuer:   "issuer",
		TokenDuration: time.Hour,
		Version:       "1.2.3",
	}, logger.Nop())

	req := httptest.NewRequest("GET", "/api/v1/version/", nil)
	rr := httptest.NewRecorder()

	h.getServerVersion(rr, req)

	assert.Equal(t, "1.2.3", rr.Body.String())
}
