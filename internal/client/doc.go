// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the locked/unlocked session lifecycle, the terminal UI flows, and
// background synchronization into a single process lifecycle.
package client
