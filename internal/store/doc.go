// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local encrypted key-value store: two
// logical trees ("data" and "outbox") backed by a single-file
// modernc.org/sqlite database. Every mutating call commits one transaction
// covering both the data write and its outbox write, so the two never
// diverge across a crash.
package store
