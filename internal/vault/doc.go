// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the three-level key hierarchy and envelope
// codec: master key wraps vault key, vault key wraps record key, each key
// in turn wraps its own payload (a vault's name, a record's data). A
// decrypt round trip that succeeds proves both possession of the right key
// and integrity of the wrapped key and wrapped payload — a wrong outer key
// fails the outer AEAD, a tampered payload fails the inner AEAD.
package vault
