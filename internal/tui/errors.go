// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-keeper/internal/facade"
)

// humanizeServerUnavailableError renders err for display in a form's error
// line. It classifies err as a [facade.CoreError] via [errors.As] and picks
// a message per [facade.Kind], rather than matching the underlying error
// text: every error the session layer returns is already a CoreError by the
// time it reaches the TUI (see internal/session and internal/facade).
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var coreErr *facade.CoreError
	if !errors.As(err, &coreErr) {
		return err.Error()
	}

	switch coreErr.Kind {
	case facade.KindNetwork:
		return "Отсутствует сеть или Сервер недоступен"
	case facade.KindAPI:
		return "Сервер вернул ошибку, попробуйте позже"
	case facade.KindAuth:
		return "Неверный email или пароль"
	case facade.KindConflict:
		return "Конфликт версий, повторите синхронизацию"
	case facade.KindOfflineMode:
		return "Действие недоступно в офлайн-режиме"
	case facade.KindSyncBusy:
		return "Синхронизация уже выполняется, повторите позже"
	case facade.KindNotFound:
		return "Запись не найдена"
	case facade.KindStore, facade.KindCipher:
		return "Локальное хранилище недоступно"
	default:
		return coreErr.Error()
	}
}
