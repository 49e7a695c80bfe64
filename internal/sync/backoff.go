// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sync

import (
	"math/rand/v2"
	"time"
)

// BackoffPolicy computes the retry delay for a drain-phase entry that hit a
// 5xx or transport error, per spec §4.6 point 5: delay = min(cap, base *
// 2^attempts), with jitter so that many clients retrying at once don't
// thunder the server in lockstep. The Engine holds a policy, but its drain
// does not consult it.
type BackoffPolicy struct {
	Base time.Duration
	Cap  time.Duration
}

// DefaultBackoffPolicy returns a 1s base, 60s cap policy.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{Base: time.Second, Cap: time.Minute}
}

// Delay returns the backoff duration for the given attempt count (1 =
// first retry), with up to ±25% jitter applied.
func (p BackoffPolicy) Delay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	d := p.Base
	for i := 0; i < attempts && d < p.Cap; i++ {
		d *= 2
	}
	if d > p.Cap {
		d = p.Cap
	}

	jitter := time.Duration(rand.Int64N(int64(d)/2+1)) - d/4
	d += jitter
	if d < 0 {
		d = 0
	}
	return d
}
