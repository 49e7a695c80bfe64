// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import "errors"

// ErrSyncBusy is returned by SyncOnce when another sync cycle already holds
// the exclusive lock, per spec §5.
var ErrSyncBusy = errors.New("sync: a cycle is already in progress")
