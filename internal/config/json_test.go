// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "voyager.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON(t *testing.T) {
	p := writeConfigFile(t, `{
		"app": {"token_sign_key": "sign", "token_issuer": "voyager", "token_duration": "2h", "version": "1.4.0", "log_level": "debug"},
		"server": {"http_address": ":8080", "grpc_address": ":9090", "request_timeout": 1000000000},
		"storage": {"db": {"driver": "mongo", "dsn": "mongodb://localhost:27017", "name": "voyager"}},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "3s", "refresh_interval": "45s"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, StructuredConfig{
		App: App{
			TokenSignKey:  "sign",
			TokenIssuer:   "voyager",
			TokenDuration: 2 * time.Hour,
			Version:       "1.4.0",
			LogLevel:      "debug",
		},
		Storage: Storage{DB: DB{Driver: DriverMongo, DSN: "mongodb://localhost:27017", Name: "voyager"}},
		Server:  Server{HTTPAddress: ":8080", GRPCAddress: ":9090", RequestTimeout: time.Second},
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: 3 * time.Second, RefreshInterval: 45 * time.Second},
	}, *cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "error reading a json file")

	_, err = parseJSON(writeConfigFile(t, `{"server": {`))
	require.ErrorContains(t, err, "error decoding json configs")

	_, err = parseJSON(writeConfigFile(t, `{"adapter": {"refresh_interval": "twice a minute"}}`))
	require.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
