// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// ErrOfflineMode is returned by any sync-related call on an
// Unlocked(offline) session, per spec §4.5.
var ErrOfflineMode = errors.New("session: not available in offline mode")
