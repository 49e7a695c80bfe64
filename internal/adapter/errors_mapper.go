// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a resty HTTP response into an error value. It returns
// nil for any 2xx status code. For known error codes it wraps the corresponding
// sentinel (e.g. [ErrConflict] for 409) with the trimmed response body as
// additional context, and for unrecognised non-2xx codes a plain
// "http <code>: <body>" error. Every non-nil result is itself wrapped in a
// [StatusError] carrying the numeric status and body, per spec's
// ApiError{status, body}.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := resp.StatusCode()
	body := strings.TrimSpace(string(resp.Body()))

	var mapped error
	switch status {
	case http.StatusBadRequest:
		mapped = fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		mapped = fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		mapped = fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		mapped = fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		mapped = fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		mapped = fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		mapped = fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		displayBody := body
		if displayBody == "" {
			displayBody = http.StatusText(status)
		}
		mapped = fmt.Errorf("http %d: %s", status, displayBody)
	}

	return &StatusError{Status: status, Body: body, Err: mapped}
}

// wrapTransportErr wraps a resty/net transport failure (the request never
// got a response at all — DNS failure, connection refused, timeout) in
// [ErrNetworkUnavailable] so callers can distinguish it from a mapped HTTP
// status via [errors.Is], instead of matching the underlying error's text.
func wrapTransportErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetworkUnavailable, err)
}
