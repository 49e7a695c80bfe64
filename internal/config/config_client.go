package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// KDFTimeCost, KDFMemoryKiB and KDFThreads configure the Argon2id work
	// factor used to derive the master key from a passphrase (spec §4.1).
	// A zero value falls back to crypto.DefaultKDFParams.
	KDFTimeCost  uint32
	KDFMemoryKiB uint32
	KDFThreads   uint8
}

// KDFParams builds a crypto.KDFParams from the client config, falling back
// to crypto.DefaultKDFParams for any field left at its zero value.
func (a ClientApp) KDFParams() crypto.KDFParams {
	params := crypto.DefaultKDFParams()
	if a.KDFTimeCost != 0 {
		params.TimeCost = a.KDFTimeCost
	}
	if a.KDFMemoryKiB != 0 {
		params.MemoryKiB = a.KDFMemoryKiB
	}
	if a.KDFThreads != 0 {
		params.Threads = a.KDFThreads
	}
	return params
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address used by the client.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often client sync workers should run.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			KDFTimeCost:  cfg.App.KDFTimeCost,
			KDFMemoryKiB: cfg.App.KDFMemoryKiB,
			KDFThreads:   cfg.App.KDFThreads,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return clientCfg, clientCfg.validate()
}
