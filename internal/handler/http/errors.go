// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header, and by handlers decoding request bodies or
// carrying PAKE handshake state across HTTP round trips. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not exactly two space-separated parts with a
	// non-empty token (see utils.ParseBearerToken); this covers an empty token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is mapped to HTTP 401 by respondError. The auth
	// middleware reports an empty token as ErrInvalidAuthorizationHeader and
	// does not return this value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errBadJSON is returned when a request body cannot be decoded as JSON
	// into the expected wire DTO.
	errBadJSON = errors.New("malformed request body")

	// errHandshakeExpired is returned by a register/login finish handler
	// when no matching pending handshake is found for the given email.
	errHandshakeExpired = errors.New("handshake expired or unknown")

	// errMissingSinceParam is mapped to HTTP 400 by respondError. The
	// list-since endpoints do not return it: parseSinceParam treats an absent
	// "since" query parameter as the zero time.
	errMissingSinceParam = errors.New("missing since query parameter")

	// errInvalidSinceParam is returned when the "since" query parameter
	// cannot be parsed as an RFC3339Nano timestamp.
	errInvalidSinceParam = errors.New("invalid since query parameter")

	// errInvalidPathID is returned when a path parameter expected to be a
	// UUID cannot be parsed as one.
	errInvalidPathID = errors.New("invalid id path parameter")
)
