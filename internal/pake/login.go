// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"bytes"
	"crypto/hmac"
	"crypto/subtle"
	"encoding/gob"
	"fmt"

	"golang.org/x/crypto/sha3"

	ristretto "github.com/gtank/ristretto255"

	"github.com/MKhiriev/go-pass-keeper/internal/secret"
)

// ClientLoginStart blinds the passphrase into alpha and generates an
// ephemeral keypair for the exchange.
func ClientLoginStart(passphrase []byte) (ClientLoginState, Message, error) {
	xu := randomScalar()
	Xu := new(ristretto.Element).ScalarBaseMult(xu)

	x := sha3.Sum512(passphrase)
	alpha := new(ristretto.Element).FromUniformBytes(x[:])
	r := randomScalar()
	alpha.ScalarMult(r, alpha)

	state := ClientLoginState{
		Xu: xu.Encode(nil),
		R:  r.Encode(nil),
	}
	msg, err := encodeMessage(loginStartWire{Alpha: alpha.Encode(nil), Xu: Xu.Encode(nil)})
	if err != nil {
		return ClientLoginState{}, nil, err
	}
	return state, msg, nil
}

// ServerLoginStart applies the account's OPRF key to the client's blinded
// value and runs its half of the ECDH exchange, returning the material the
// client needs to derive the same session key and confirm the server holds
// the right password file.
func ServerLoginStart(file PasswordFile, msg Message) (ServerLoginState, Message, error) {
	var wire loginStartWire
	if err := decodeMessage(msg, &wire); err != nil {
		return ServerLoginState{}, nil, err
	}

	ks, err := decodeScalar(file.Ks)
	if err != nil {
		return ServerLoginState{}, nil, fmt.Errorf("%w: ks: %w", ErrInvalidMessage, err)
	}
	psPriv, err := decodeScalar(file.PsPriv)
	if err != nil {
		return ServerLoginState{}, nil, fmt.Errorf("%w: ps: %w", ErrInvalidMessage, err)
	}
	Pu, err := decodeElement(file.Pu)
	if err != nil {
		return ServerLoginState{}, nil, fmt.Errorf("%w: pu: %w", ErrInvalidMessage, err)
	}
	alpha, err := decodeElement(wire.Alpha)
	if err != nil {
		return ServerLoginState{}, nil, fmt.Errorf("%w: alpha: %w", ErrInvalidMessage, err)
	}
	Xu, err := decodeElement(wire.Xu)
	if err != nil {
		return ServerLoginState{}, nil, fmt.Errorf("%w: xu: %w", ErrInvalidMessage, err)
	}

	xs := randomScalar()
	Xs := new(ristretto.Element).ScalarBaseMult(xs)
	beta := new(ristretto.Element).ScalarMult(ks, alpha)

	K := keServer(psPriv, xs, Pu, Xu)
	sessionKey := prf(K, []byte{0})
	fk1 := prf(K, []byte{1})
	fk2 := prf(K, []byte{2})

	state := ServerLoginState{
		ExpectedFK2: fk2,
		SessionKey:  sessionKey,
	}
	out, err := encodeMessage(loginResponseWire{
		Beta:       beta.Encode(nil),
		Xs:         Xs.Encode(nil),
		FK1:        fk1,
		Tag:        file.Tag,
		Ciphertext: file.Ciphertext,
	})
	if err != nil {
		return ServerLoginState{}, nil, err
	}
	return state, out, nil
}

// ClientLoginFinish unwraps the server's stored envelope using the OPRF
// output derived from beta, verifies the server's confirmation value,
// derives the shared session key, and returns the client's own confirmation
// value for the server to check.
func ClientLoginFinish(passphrase []byte, state ClientLoginState, msg Message) (Message, SessionKey, error) {
	var wire loginResponseWire
	if err := decodeMessage(msg, &wire); err != nil {
		return nil, secret.Bytes{}, err
	}

	r, err := decodeScalar(state.R)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: r: %w", ErrInvalidMessage, err)
	}
	xu, err := decodeScalar(state.Xu)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: xu: %w", ErrInvalidMessage, err)
	}
	beta, err := decodeElement(wire.Beta)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: beta: %w", ErrInvalidMessage, err)
	}
	Xs, err := decodeElement(wire.Xs)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: xs: %w", ErrInvalidMessage, err)
	}

	x := sha3.Sum512(passphrase)
	rw := oprfB(beta, r, x)
	hmacKey, cipherKey := deriveHKDFKeys(rw)

	if subtle.ConstantTimeCompare(hmac.New(sha3.New256, hmacKey).Sum(wire.Ciphertext), wire.Tag) != 1 {
		return nil, secret.Bytes{}, ErrTagMismatch
	}

	stream, err := aesCTR(cipherKey)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("pake: init cipher: %w", err)
	}
	plainBytes := make([]byte, len(wire.Ciphertext))
	stream.XORKeyStream(plainBytes, wire.Ciphertext)

	var plain regPlaintext
	if err := gob.NewDecoder(bytes.NewReader(plainBytes)).Decode(&plain); err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: envelope: %w", ErrInvalidMessage, err)
	}

	pu, err := decodeScalar(plain.PuScalar)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: pu: %w", ErrInvalidMessage, err)
	}
	Ps, err := decodeElement(plain.Ps)
	if err != nil {
		return nil, secret.Bytes{}, fmt.Errorf("%w: ps: %w", ErrInvalidMessage, err)
	}

	K := keUser(pu, xu, Ps, Xs)
	sessionKey := prf(K, []byte{0})
	fk1 := prf(K, []byte{1})
	if subtle.ConstantTimeCompare(fk1, wire.FK1) != 1 {
		return nil, secret.Bytes{}, ErrServerAuthFailed
	}
	fk2 := prf(K, []byte{2})

	out, err := encodeMessage(loginFinishWire{FK2: fk2})
	if err != nil {
		return nil, secret.Bytes{}, err
	}
	return out, secret.New(sessionKey), nil
}

// ServerLoginFinish checks the client's confirmation value against the one
// computed in ServerLoginStart. A nil return means the client has proven
// knowledge of the passphrase that produced this account's password file.
func ServerLoginFinish(state ServerLoginState, msg Message) error {
	var wire loginFinishWire
	if err := decodeMessage(msg, &wire); err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(wire.FK2, state.ExpectedFK2) != 1 {
		return ErrClientAuthFailed
	}
	return nil
}
