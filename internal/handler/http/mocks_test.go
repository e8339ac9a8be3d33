// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn   func(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	loginFn      func(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.AuthResult{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.AuthResult{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockPostService struct {
	createFn func(ctx context.Context, callerID, text string) (models.Post, error)
	listFn   func(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	getFn    func(ctx context.Context, postID string) (models.Post, error)
	updateFn func(ctx context.Context, callerID, postID string, patch models.PostPatch) (models.Post, error)
	deleteFn func(ctx context.Context, callerID, postID string) error
}

func (m *mockPostService) CreatePost(ctx context.Context, callerID, text string) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, callerID, text)
	}
	return models.Post{}, nil
}

func (m *mockPostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.Post{}, nil
}

func (m *mockPostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID)
	}
	return models.Post{}, nil
}

func (m *mockPostService) UpdatePost(ctx context.Context, callerID, postID string, patch models.PostPatch) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, callerID, postID, patch)
	}
	return models.Post{}, nil
}

func (m *mockPostService) DeletePost(ctx context.Context, callerID, postID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, callerID, postID)
	}
	return nil
}

type mockUserService struct {
	getUserFn func(ctx context.Context, userID string) (models.UserProfile, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.UserProfile, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.UserProfile{}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{Version: m.version, BuildDate: "N/A", BuildCommit: "N/A"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// validToken is accepted by authenticatingAuthService and maps to "u1".
const validToken = "valid-token"

// authenticatingAuthService accepts validToken only.
func authenticatingAuthService() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token == validToken {
				return models.Token{UserID: "u1"}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = authenticatingAuthService()
	}
	if services.PostService == nil {
		services.PostService = &mockPostService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, 0, logger.Nop())
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// envelope decodes a models.Response, keeping Data raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
	UserID  string          `json:"user_id"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e), "body: %s", rec.Body.String())
	return e
}
