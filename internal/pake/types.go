// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// Message is an opaque, gob-encoded protocol message. Callers pass it across
// the wire (base64'd inside a JSON envelope, per the transport adapter)
// without ever needing to know its internal shape.
type Message []byte

// SessionKey is the shared secret both sides derive on a successful login.
// It is the seed for the session's envelope-decryption chain, never used
// directly as a transport key.
type SessionKey = secret.Bytes

// ServerSetup carries server-wide, non-secret configuration for the
// handshake. The current construction derives all cryptographic material
// per-account (mirroring occlude), so ServerSetup has no cryptographic
// fields today; it exists so a future server-wide static keypair (full
// OPAQUE mutual authentication) can be threaded through ServerRegisterStart
// without changing its signature.
type ServerSetup struct {
	ServerID string
}

// PasswordFile is what the server persists after a successful registration.
// It has the same sensitivity as a password hash: anyone holding it can run
// an offline dictionary attack against the account's passphrase, mitigated
// only by the Argon2id-strengthened OPRF step. Store it the way you would a
// password hash.
type PasswordFile struct {
	Ks         []byte // OPRF key, server-held scalar
	Ps         []byte // server's static public key
	PsPriv     []byte // server's static private scalar
	Pu         []byte // client's static public key
	Tag        []byte // HMAC tag over Ciphertext
	Ciphertext []byte // AES-CTR ciphertext of {pu, Pu, Ps}
}

// ClientRegState is the state a client holds between ClientRegisterStart and
// ClientRegisterFinish. It carries no secret material of its own — the
// passphrase is supplied fresh to each call — but is kept as a struct (over
// threading no argument at all) so the shape matches the other three state
// types and can grow without breaking callers.
type ClientRegState struct{}

// ServerRegState is the state a server holds between ServerRegisterStart and
// ServerRegisterFinish, scoped to one in-flight registration.
type ServerRegState struct {
	AccountID string
	Ks        []byte
	Ps        []byte
	PsPriv    []byte
}

// ClientLoginState is the state a client holds between ClientLoginStart and
// ClientLoginFinish.
type ClientLoginState struct {
	Xu []byte // ephemeral private scalar
	R  []byte // OPRF blinding factor
}

// ServerLoginState is the state a server holds between ServerLoginStart and
// ServerLoginFinish, scoped to one in-flight login.
type ServerLoginState struct {
	ExpectedFK2 []byte
	SessionKey  []byte
}

// wire shapes, gob-encoded into Message. Unexported: callers only ever see
// the opaque Message type.
type registerStartWire struct {
	Ks []byte
	Ps []byte
}

type registerFinishWire struct {
	Pu         []byte
	Tag        []byte
	Ciphertext []byte
}

type loginStartWire struct {
	Alpha []byte
	Xu    []byte
}

type loginResponseWire struct {
	Beta       []byte
	Xs         []byte
	FK1        []byte
	Tag        []byte
	Ciphertext []byte
}

type loginFinishWire struct {
	FK2 []byte
}

func encodeMessage(v any) (Message, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("pake: encode message: %w", err)
	}
	return Message(buf.Bytes()), nil
}

func decodeMessage(msg Message, v any) error {
	if len(msg) == 0 {
		return ErrInvalidMessage
	}
	if err := gob.NewDecoder(bytes.NewReader(msg)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return nil
}
