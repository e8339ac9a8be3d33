// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "voyager",
			TokenDuration: time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{DB: DB{
			Driver: DriverPostgres,
			DSN:    "postgres://localhost/voyager",
		}},
		Server: Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid postgres",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid sqlite",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Storage.DB.DSN = "file:voyager.db"
			},
		},
		{
			name: "valid mongo",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverMongo
				cfg.Storage.DB.DSN = "mongodb://localhost:27017"
				cfg.Storage.DB.Name = "voyager"
			},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "chatty" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "mongo without database name",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverMongo
				cfg.Storage.DB.Name = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "no listen address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = ""
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "grpc only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = "localhost:9090"
			},
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	ok := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, ok.validate())

	noAddr := &ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080"}}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)

	negativeRefresh := &ClientConfig{Adapter: ClientAdapter{
		HTTPAddress:     "localhost:8080",
		RequestTimeout:  time.Second,
		RefreshInterval: -time.Second,
	}}
	assert.ErrorIs(t, negativeRefresh.validate(), ErrInvalidAdapterConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{LogLevel: "debug", TokenSignKey: "server-only"},
		Adapter: Adapter{HTTPAddress: "http://api:8080", RequestTimeout: 3 * time.Second, RefreshInterval: time.Minute},
	}

	clientCfg := newClientConfig(cfg)

	require.NotNil(t, clientCfg)
	assert.Equal(t, "debug", clientCfg.App.LogLevel)
	assert.Equal(t, "http://api:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, clientCfg.Adapter.RefreshInterval)
}
