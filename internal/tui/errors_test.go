// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keeper/internal/facade"
)

func TestHumanizeServerUnavailableError_Nil(t *testing.T) {
	assert.Equal(t, "", humanizeServerUnavailableError(nil))
}

func TestHumanizeServerUnavailableError_ClassifiesByKind(t *testing.T) {
	cases := []struct {
		kind facade.Kind
		want string
	}{
		{facade.KindNetwork, "Отсутствует сеть или Сервер недоступен"},
		{facade.KindAuth, "Неверный email или пароль"},
		{facade.KindOfflineMode, "Действие недоступно в офлайн-режиме"},
	}

	for _, tc := range cases {
		err := facade.NewError(tc.kind, errors.New("underlying"))
		assert.Equal(t, tc.want, humanizeServerUnavailableError(err))
	}
}

func TestHumanizeServerUnavailableError_NonCoreErrorFallsBackToMessage(t *testing.T) {
	err := errors.New("some unclassified failure")
	assert.Equal(t, "some unclassified failure", humanizeServerUnavailableError(err))
}
