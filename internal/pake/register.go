// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"bytes"
	"crypto/hmac"
	"encoding/gob"
	"fmt"

	"golang.org/x/crypto/sha3"

	ristretto "github.com/gtank/ristretto255"
)

// regPlaintext is the data AEAD-wrapped (AES-CTR + HMAC) into a
// PasswordFile's Ciphertext/Tag pair.
type regPlaintext struct {
	PuScalar []byte
	Pu       []byte
	Ps       []byte
}

// ClientRegisterStart begins registering a new account. The current
// construction needs no client-side setup before the server's first
// response, so the returned state is empty and the message is a bare
// signal to begin; both exist so the four-call shape matches login.
func ClientRegisterStart(passphrase []byte) (ClientRegState, Message, error) {
	msg, err := encodeMessage(struct{}{})
	if err != nil {
		return ClientRegState{}, nil, err
	}
	return ClientRegState{}, msg, nil
}

// ServerRegisterStart allocates a fresh per-account OPRF key and static
// keypair, and returns the material the client needs to wrap its password
// envelope. This step must run over an authenticated, confidential channel:
// the OPRF key ks is sent to the client in the clear.
func ServerRegisterStart(setup ServerSetup, accountID string, msg Message) (ServerRegState, Message, error) {
	ks := randomScalar()
	psPriv := randomScalar()
	Ps := new(ristretto.Element).ScalarBaseMult(psPriv)

	state := ServerRegState{
		AccountID: accountID,
		Ks:        ks.Encode(nil),
		Ps:        Ps.Encode(nil),
		PsPriv:    psPriv.Encode(nil),
	}

	out, err := encodeMessage(registerStartWire{Ks: state.Ks, Ps: state.Ps})
	if err != nil {
		return ServerRegState{}, nil, err
	}
	return state, out, nil
}

// ClientRegisterFinish derives the account's wrapping key from passphrase
// and the server's OPRF key, wraps the client's freshly generated static
// keypair together with the server's public key, and returns the envelope
// for the server to store.
func ClientRegisterFinish(passphrase []byte, state ClientRegState, msg Message) (Message, error) {
	var wire registerStartWire
	if err := decodeMessage(msg, &wire); err != nil {
		return nil, err
	}

	ks, err := decodeScalar(wire.Ks)
	if err != nil {
		return nil, fmt.Errorf("%w: ks: %w", ErrInvalidMessage, err)
	}

	pu := randomScalar()
	Pu := new(ristretto.Element).ScalarBaseMult(pu)

	x := sha3.Sum512(passphrase)
	rw := oprfA(x[:], ks)
	hmacKey, cipherKey := deriveHKDFKeys(rw)

	stream, err := aesCTR(cipherKey)
	if err != nil {
		return nil, fmt.Errorf("pake: init cipher: %w", err)
	}

	var plainBuf bytes.Buffer
	if err := gob.NewEncoder(&plainBuf).Encode(regPlaintext{
		PuScalar: pu.Encode(nil),
		Pu:       Pu.Encode(nil),
		Ps:       wire.Ps,
	}); err != nil {
		return nil, fmt.Errorf("pake: encode envelope: %w", err)
	}

	ciphertext := make([]byte, plainBuf.Len())
	stream.XORKeyStream(ciphertext, plainBuf.Bytes())
	tag := hmac.New(sha3.New256, hmacKey).Sum(ciphertext)

	return encodeMessage(registerFinishWire{
		Pu:         Pu.Encode(nil),
		Tag:        tag,
		Ciphertext: ciphertext,
	})
}

// ServerRegisterFinish validates nothing further (the tag was produced
// under a key only a correct passphrase could derive, so forging it without
// the passphrase is infeasible) and assembles the PasswordFile the caller
// must persist before this registration can be used to log in.
func ServerRegisterFinish(state ServerRegState, msg Message) (PasswordFile, error) {
	var wire registerFinishWire
	if err := decodeMessage(msg, &wire); err != nil {
		return PasswordFile{}, err
	}

	return PasswordFile{
		Ks:         state.Ks,
		Ps:         state.Ps,
		PsPriv:     state.PsPriv,
		Pu:         wire.Pu,
		Tag:        wire.Tag,
		Ciphertext: wire.Ciphertext,
	}, nil
}
