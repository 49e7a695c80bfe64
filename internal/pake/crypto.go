// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	ristretto "github.com/gtank/ristretto255"
)

const (
	argonTime   = 3
	argonMemory = 1e5
)

// randomScalar returns a uniformly random Ristretto255 scalar.
func randomScalar() *ristretto.Scalar {
	b := make([]byte, 64)
	if _, err := rand.Read(b); err != nil {
		panic("pake: could not get entropy")
	}
	return new(ristretto.Scalar).FromUniformBytes(b)
}

// oprfA computes the OPRF output H(x, H'(x)^k) from the key-holder's side,
// strengthened with Argon2id so a stolen password file is costly to
// dictionary-attack.
func oprfA(x []byte, k *ristretto.Scalar) []byte {
	hprimex := new(ristretto.Element).FromUniformBytes(x)
	hprimex.ScalarMult(k, hprimex)
	hash := sha3.Sum512(append(x, hprimex.Encode(nil)...))
	return argon2.IDKey(hash[:], nil, argonTime, argonMemory, 4, 32)
}

// oprfB computes the same OPRF output from the blinded side, given
// beta = alpha^k = (H'(pw)^r)^k, the blinding factor r, and the password.
func oprfB(beta *ristretto.Element, r *ristretto.Scalar, x [64]byte) []byte {
	rinv := new(ristretto.Scalar).Invert(r)
	betaRInv := new(ristretto.Element).ScalarMult(rinv, beta)
	hash := sha3.Sum512(append(x[:], betaRInv.Encode(nil)...))
	return argon2.IDKey(hash[:], nil, argonTime, argonMemory, 4, 32)
}

// prf is a keyed pseudorandom function built on Blake2b.
func prf(k [32]byte, x []byte) []byte {
	h, err := blake2b.New256(k[:])
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(x)
	return h.Sum(nil)
}

// deriveHKDFKeys splits x into independent HMAC and cipher keys.
func deriveHKDFKeys(x []byte) (authKey, cipherKey []byte) {
	kdf := hkdf.New(sha3.New512, x, nil, nil)
	cipherKey = make([]byte, 32)
	authKey = make([]byte, 32)
	if _, err := io.ReadFull(kdf, cipherKey); err != nil {
		panic("pake: could not derive hkdf key material")
	}
	if _, err := io.ReadFull(kdf, authKey); err != nil {
		panic("pake: could not derive hkdf key material")
	}
	return authKey, cipherKey
}

// keServer computes the server's view of the ECDH-based shared secret.
func keServer(ps, xs *ristretto.Scalar, Pu, Xu *ristretto.Element) [32]byte {
	xsPu := new(ristretto.Element).ScalarMult(xs, Pu)
	psXu := new(ristretto.Element).ScalarMult(ps, Xu)
	xsXu := new(ristretto.Element).ScalarMult(xs, Xu)
	shared := append(xsPu.Encode(nil), psXu.Encode(nil)...)
	shared = append(shared, xsXu.Encode(nil)...)
	return sha3.Sum256(shared)
}

// keUser computes the client's view of the same shared secret.
func keUser(pu, xu *ristretto.Scalar, Ps, Xs *ristretto.Element) [32]byte {
	puXs := new(ristretto.Element).ScalarMult(pu, Xs)
	xuPs := new(ristretto.Element).ScalarMult(xu, Ps)
	xuXs := new(ristretto.Element).ScalarMult(xu, Xs)
	shared := append(puXs.Encode(nil), xuPs.Encode(nil)...)
	shared = append(shared, xuXs.Encode(nil)...)
	return sha3.Sum256(shared)
}

func aesCTR(key []byte) (cipher.Stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, block.BlockSize())
	return cipher.NewCTR(block, iv), nil
}

func decodeScalar(b []byte) (*ristretto.Scalar, error) {
	s := new(ristretto.Scalar)
	if err := s.Decode(b); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeElement(b []byte) (*ristretto.Element, error) {
	e := new(ristretto.Element)
	if err := e.Decode(b); err != nil {
		return nil, err
	}
	return e, nil
}
