// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-pass-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the session,
// PAKE, and sync layers from the underlying protocol. The package ships an
// HTTP/JSON implementation ([NewHTTPServerAdapter]) built on
// [github.com/go-resty/resty/v2].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/config"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) { h.token = strings.TrimSpace(token) }
func (h *httpServerAdapter) Token() string         { return h.token }

func (h *httpServerAdapter) authed(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func (h *httpServerAdapter) RegisterStart(ctx context.Context, in models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	var out models.RegisterStartResponse
	resp, err := h.authed(ctx).SetBody(in).SetResult(&out).Post("/api/v1/auth/register/start")
	if err != nil {
		return models.RegisterStartResponse{}, wrapTransportErr("register start request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.RegisterStartResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) RegisterFinish(ctx context.Context, in models.RegisterFinishRequest) error {
	resp, err := h.authed(ctx).SetBody(in).Post("/api/v1/auth/register/finish")
	if err != nil {
		return wrapTransportErr("register finish request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) LoginStart(ctx context.Context, in models.LoginStartRequest) (models.LoginStartResponse, error) {
	var out models.LoginStartResponse
	resp, err := h.authed(ctx).SetBody(in).SetResult(&out).Post("/api/v1/auth/login/start")
	if err != nil {
		return models.LoginStartResponse{}, wrapTransportErr("login start request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.LoginStartResponse{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) LoginFinish(ctx context.Context, in models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	var out models.LoginFinishResponse
	resp, err := h.authed(ctx).SetBody(in).SetResult(&out).Post("/api/v1/auth/login/finish")
	if err != nil {
		return models.LoginFinishResponse{}, wrapTransportErr("login finish request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.LoginFinishResponse{}, err
	}
	h.SetToken(out.AccessToken)
	return out, nil
}

func (h *httpServerAdapter) CreateVault(ctx context.Context, v models.VaultWire) (models.VaultWire, error) {
	var out models.VaultWire
	resp, err := h.authed(ctx).SetBody(v).SetResult(&out).Post("/api/v1/vaults")
	if err != nil {
		return models.VaultWire{}, wrapTransportErr("create vault request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.VaultWire{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) UpsertVault(ctx context.Context, v models.VaultWire) (models.VaultWire, error) {
	var out models.VaultWire
	resp, err := h.authed(ctx).SetBody(v).SetResult(&out).Put("/api/v1/vaults/" + v.ID)
	if err != nil {
		return models.VaultWire{}, wrapTransportErr("upsert vault request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.VaultWire{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) DeleteVault(ctx context.Context, id string) error {
	resp, err := h.authed(ctx).Delete("/api/v1/vaults/" + id)
	if err != nil {
		return wrapTransportErr("delete vault request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListVaultsSince(ctx context.Context, since time.Time) ([]models.VaultWire, error) {
	var out []models.VaultWire
	resp, err := h.authed(ctx).
		SetQueryParam("since", since.UTC().Format(time.RFC3339Nano)).
		SetResult(&out).
		Get("/api/v1/vaults")
	if err != nil {
		return nil, wrapTransportErr("list vaults request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *httpServerAdapter) CreateRecord(ctx context.Context, vaultID string, r models.RecordWire) (models.RecordWire, error) {
	var out models.RecordWire
	resp, err := h.authed(ctx).SetBody(r).SetResult(&out).Post("/api/v1/vaults/" + vaultID + "/records")
	if err != nil {
		return models.RecordWire{}, wrapTransportErr("create record request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.RecordWire{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) UpsertRecord(ctx context.Context, vaultID string, r models.RecordWire) (models.RecordWire, error) {
	var out models.RecordWire
	resp, err := h.authed(ctx).SetBody(r).SetResult(&out).Put("/api/v1/vaults/" + vaultID + "/records/" + r.ID)
	if err != nil {
		return models.RecordWire{}, wrapTransportErr("upsert record request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.RecordWire{}, err
	}
	return out, nil
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, vaultID, id string) error {
	resp, err := h.authed(ctx).Delete("/api/v1/vaults/" + vaultID + "/records/" + id)
	if err != nil {
		return wrapTransportErr("delete record request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListRecordsSince(ctx context.Context, vaultID string, since time.Time) ([]models.RecordWire, error) {
	var out []models.RecordWire
	resp, err := h.authed(ctx).
		SetQueryParam("since", since.UTC().Format(time.RFC3339Nano)).
		SetResult(&out).
		Get("/api/v1/vaults/" + vaultID + "/records")
	if err != nil {
		return nil, wrapTransportErr("list records request", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out, nil
}
