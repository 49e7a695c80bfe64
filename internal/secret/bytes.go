// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret provides a single zeroizing wrapper type used everywhere a
// passphrase, derived key, or decrypted vault/record payload travels through
// the core. It replaces the per-language "secret" crates used by the original
// implementation (Rust's secrecy/zeroize) with one well-tested abstraction:
// a value that never renders its contents in logs or %v/%s formatting, and
// that can be explicitly zeroed when its lifetime ends.
package secret

import (
	"runtime"
	"unsafe"

	"github.com/rs/zerolog"
)

func unsafeSlice(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}

// Bytes holds sensitive byte material. Its zero value is an empty, already
// zeroed secret. Callers must call Expose to read the contents and Zero when
// the value's lifetime ends (e.g. on session lock).
type Bytes struct {
	b []byte
}

// New wraps b. The caller transfers ownership: b must not be retained or
// mutated by the caller afterward.
func New(b []byte) Bytes {
	if len(b) > 0 {
		runtime.SetFinalizer(&b[0], func(p *byte) {
			zeroFrom(p, len(b))
		})
	}
	return Bytes{b: b}
}

// zeroFrom overwrites n bytes starting at p. Used only by the finalizer
// backstop; it must not allocate.
func zeroFrom(p *byte, n int) {
	s := unsafeSlice(p, n)
	for i := range s {
		s[i] = 0
	}
}

// NewString wraps the UTF-8 bytes of s.
func NewString(s string) Bytes {
	return New([]byte(s))
}

// Expose returns the wrapped bytes. Named deliberately unlike an Unwrap or
// Bytes() accessor so that call sites read as an explicit admission that
// secret material is about to leave the wrapper.
func (b Bytes) Expose() []byte {
	return b.b
}

// Len reports the length of the wrapped material without exposing it.
func (b Bytes) Len() int {
	return len(b.b)
}

// Zero overwrites the backing array with zero bytes. Safe to call more than
// once and on a zero-value Bytes.
func (b *Bytes) Zero() {
	for i := range b.b {
		b.b[i] = 0
	}
	b.b = nil
}

// String implements fmt.Stringer. It never prints the wrapped content.
func (b Bytes) String() string {
	return "[REDACTED]"
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so that a Bytes
// value embedded in a logged struct never leaks through a json/console
// writer, even if a caller forgets to exclude it from a logged event.
func (b Bytes) MarshalZerologObject(e *zerolog.Event) {
	e.Str("secret", "[REDACTED]").Int("len", len(b.b))
}
