// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	appCfg := config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-pass-keeper",
		TokenDuration: time.Hour,
		Version:       "0.1.0",
	}

	h := NewHandler(nil, nil, nil, appCfg, logger.Nop())

	assert.NotNil(t, h)
	assert.NotNil(t, h.pending)
	assert.Equal(t, appCfg.TokenSignKey, h.tokenSignKey)
	assert.Equal(t, appCfg.TokenIssuer, h.tokenIssuer)
	assert.Equal(t, appCfg.TokenDuration, h.tokenDuration)
	assert.Equal(t, appCfg.Version, h.version)
	assert.Equal(t, appCfg.TokenIssuer, h.serverSetup.ServerID)
}
