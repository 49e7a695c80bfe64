// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/pake"
)

// handshakeTTL bounds how long a client has between the start and finish
// call of a registration or login round trip before the server forgets its
// half of the exchange.
const handshakeTTL = 2 * time.Minute

// pendingHandshakes holds server-side PAKE state across the two HTTP round
// trips a registration or login requires, keyed by account email. Neither
// register.go nor login.go in [pake] models this: the handshake functions
// themselves are stateless and expect their caller to carry state between
// calls, which for the reference server means an in-memory map guarded by a
// TTL rather than a long-lived connection.
type pendingHandshakes struct {
	mu            sync.Mutex
	registrations map[string]pendingRegistration
	logins        map[string]pendingLogin
}

type pendingRegistration struct {
	state   pake.ServerRegState
	expires time.Time
}

type pendingLogin struct {
	state   pake.ServerLoginState
	expires time.Time
}

func newPendingHandshakes() *pendingHandshakes {
	return &pendingHandshakes{
		registrations: make(map[string]pendingRegistration),
		logins:        make(map[string]pendingLogin),
	}
}

func (p *pendingHandshakes) putRegistration(email string, state pake.ServerRegState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registrations[email] = pendingRegistration{state: state, expires: time.Now().Add(handshakeTTL)}
}

// takeRegistration removes and returns the pending state for email. It is a
// one-shot read: calling it twice for the same email always returns ok=false
// the second time, which keeps a stale RegisterFinish from being replayed.
func (p *pendingHandshakes) takeRegistration(email string) (pake.ServerRegState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.registrations[email]
	delete(p.registrations, email)
	if !ok || time.Now().After(entry.expires) {
		return pake.ServerRegState{}, false
	}
	return entry.state, true
}

func (p *pendingHandshakes) putLogin(email string, state pake.ServerLoginState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logins[email] = pendingLogin{state: state, expires: time.Now().Add(handshakeTTL)}
}

func (p *pendingHandshakes) takeLogin(email string) (pake.ServerLoginState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.logins[email]
	delete(p.logins, email)
	if !ok || time.Now().After(entry.expires) {
		return pake.ServerLoginState{}, false
	}
	return entry.state, true
}
