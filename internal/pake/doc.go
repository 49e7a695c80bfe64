// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pake implements the asymmetric password-authenticated key
// exchange used to register and log in an account without the server ever
// learning the passphrase. The construction is OPAQUE
// (https://eprint.iacr.org/2018/163.pdf) over the Ristretto255 group,
// SHA3/Blake2b/HKDF for hashing and key derivation, and Argon2id-strengthened
// OPRF output — the same choices avahowell/occlude makes, restructured here
// into eight free functions (four for registration, four for login) instead
// of stateful Client/Server types, so that the handshake can cross a process
// boundary: every intermediate state a caller must hold onto between calls
// (ClientRegState, ServerRegState, ClientLoginState, ServerLoginState) is an
// exported, gob-encodable struct, and every message exchanged between client
// and server is an opaque, already-encoded Message ([]byte).
//
// Registration:
//
//	cstate, m1, _ := ClientRegisterStart(passphrase)
//	sstate, m2, _ := ServerRegisterStart(setup, accountID, m1)
//	m3, _         := ClientRegisterFinish(passphrase, cstate, m2)
//	file, _       := ServerRegisterFinish(sstate, m3) // caller persists file
//
// Login:
//
//	cstate, m1, _       := ClientLoginStart(passphrase)
//	sstate, m2, _       := ServerLoginStart(file, m1)
//	m3, sessionKey, _   := ClientLoginFinish(passphrase, cstate, m2)
//	err                 := ServerLoginFinish(sstate, m3) // nil => authenticated
//
// Registration is assumed to run over an already-authenticated, confidential
// channel (TLS) — as in occlude, the server's per-account OPRF key is sent
// to the client in the clear during registration, which is only safe under
// that assumption.
package pake
