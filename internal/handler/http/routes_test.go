// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, 5*time.Second, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, log, h.logger)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/register"},
		{http.MethodPost, "/api/users/login"},
		{http.MethodGet, "/api/users/u1"},
		{http.MethodGet, "/api/posts"},
		{http.MethodGet, "/api/posts/p1"},
		{http.MethodGet, "/api/version"},
		// protected: 401 still proves the route exists
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/p1"},
		{http.MethodDelete, "/api/posts/p1"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "{}", nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/p1"},
		{http.MethodDelete, "/api/posts/p1"},
	} {
		rec := doRequest(t, router, tc.method, tc.path, "{}", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_UnknownRouteAndMethod(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)

	rec = doRequest(t, router, http.MethodPatch, "/api/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/api/posts/p1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/posts", "", map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_WithRequestTimeout(t *testing.T) {
	h := newTestHandler(&service.Services{})
	h.requestTimeout = time.Second

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var info models.AppInfo
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &info))
	assert.Equal(t, "1.2.3", info.Version)
}
