// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import "errors"

var (
	// ErrInvalidMessage is returned when a Message cannot be decoded into
	// the wire shape a given step expects — truncated, corrupted, or sent
	// out of sequence.
	ErrInvalidMessage = errors.New("pake: invalid message")

	// ErrTagMismatch is returned when the HMAC tag guarding the server's
	// wrapped registration ciphertext does not verify. It means the
	// password file was tampered with, or the supplied passphrase is wrong.
	ErrTagMismatch = errors.New("pake: authentication tag mismatch")

	// ErrServerAuthFailed is returned by ClientLoginFinish when the
	// server's confirmation value does not match — the party on the other
	// end does not hold the expected password file.
	ErrServerAuthFailed = errors.New("pake: server authentication failed")

	// ErrClientAuthFailed is returned by ServerLoginFinish when the
	// client's confirmation value does not match — the supplied passphrase
	// did not produce the registered credentials.
	ErrClientAuthFailed = errors.New("pake: client authentication failed")
)
