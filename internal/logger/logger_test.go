// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("voyager-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "voyager-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")

	// The caller is the function name, not file:line.
	caller, ok := entry["func"].(string)
	require.True(t, ok, "expected a func field")
	assert.NotEmpty(t, caller)
	assert.False(t, strings.Contains(caller, ".go:"), caller)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level     string
		wantLevel zerolog.Level
		wantErr   bool
	}{
		{level: "warn", wantLevel: zerolog.WarnLevel},
		{level: "error", wantLevel: zerolog.ErrorLevel},
		{level: "", wantLevel: zerolog.DebugLevel},
		{level: "loud", wantLevel: zerolog.DebugLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLogger("level")

			err := l.SetLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_AddsFieldsWithoutTouchingParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("voyager-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "voyager-server", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	// No logger attached: a disabled logger, never nil.
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/api/posts", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-3").Logger()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-3", decodeEntry(t, &buf)["trace_id"])
}
