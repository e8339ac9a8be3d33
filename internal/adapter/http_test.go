// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/models"
)

// newTestAdapter returns an adapter pointed at srv.
func newTestAdapter(t *testing.T, srv *httptest.Server) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, response models.Response) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(response))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "no scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "spaces", raw: "  http://api:9000  ", want: "http://api:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_StoresToken(t *testing.T) {
	request := models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var got models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, request, got)

		w.Header().Set("Authorization", "Bearer header-token")
		writeEnvelope(t, w, http.StatusCreated, models.Response{Success: true, Token: "header-token", UserID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	result, err := a.Register(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, models.AuthResult{UserID: "u1", Token: "header-token"}, result)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_FallsBackToBodyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Token: "body-token", UserID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	result, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "body-token", result.Token)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, models.Response{Error: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "nope"})

	require.ErrorIs(t, err, ErrBadRequest)
	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	assert.Equal(t, "invalid credentials", respErr.Message)
	assert.Empty(t, a.Token())
}

func TestLogin_NoTokenIssued(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, UserID: "u1"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// ── Users & posts ───────────────────────────────────────────────────────────

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/ghost", r.URL.Path)
		writeEnvelope(t, w, http.StatusNotFound, models.Response{Error: "user not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).GetUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPosts_SendsFilter(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: []models.Post{
			{ID: "p2", UserID: "u1", Text: "second", CreatedAt: created},
			{ID: "p1", UserID: "u1", Text: "first", CreatedAt: created},
		}})
	}))
	defer srv.Close()

	posts, err := newTestAdapter(t, srv).ListPosts(context.Background(), models.PostFilter{UserID: "u1"})

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.True(t, created.Equal(posts[1].CreatedAt))
}

func TestListPosts_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: []models.Post{}})
	}))
	defer srv.Close()

	posts, err := newTestAdapter(t, srv).ListPosts(context.Background(), models.PostFilter{})

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreatePost_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body models.CreatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body.Text)

		writeEnvelope(t, w, http.StatusCreated, models.Response{Success: true, Data: models.Post{ID: "p1", UserID: "u1", Text: "hello"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("tok")
	post, err := a.CreatePost(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
}

func TestAuthenticatedCalls_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	ctx := context.Background()

	_, err := a.CreatePost(ctx, "hello")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = a.UpdatePost(ctx, "p1", models.PostPatch{})
	assert.ErrorIs(t, err, ErrNoToken)

	assert.ErrorIs(t, a.DeletePost(ctx, "p1"), ErrNoToken)
}

func TestUpdatePost_SendsPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/posts/p1", r.URL.Path)

		var patch models.PostPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.NotNil(t, patch.Text)
		assert.Equal(t, "edited", *patch.Text)

		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Post{ID: "p1", Text: "edited"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("tok")
	text := "edited"
	post, err := a.UpdatePost(context.Background(), "p1", models.PostPatch{Text: &text})

	require.NoError(t, err)
	assert.Equal(t, "edited", post.Text)
}

func TestDeletePost_NotOwner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeEnvelope(t, w, http.StatusUnauthorized, models.Response{Error: "user not authorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("tok")
	err := a.DeletePost(context.Background(), "p1")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "user not authorized")
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.AppInfo{Version: "1.2.0", BuildDate: "N/A", BuildCommit: "abc"}})
	}))
	defer srv.Close()

	info, err := newTestAdapter(t, srv).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.0", info.Version)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{name: "server error envelope", status: http.StatusInternalServerError, body: `{"success":false,"error":"Server Error"}`, want: ErrInternalServerError, message: "Server Error"},
		{name: "plain body", status: http.StatusBadGateway, body: "upstream down", want: ErrUnexpectedStatus, message: "upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, want: ErrUnexpectedStatus, message: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv).Version(context.Background())

			require.ErrorIs(t, err, tt.want)
			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.message, respErr.Message)
		})
	}
}

func TestRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv)
	srv.Close()

	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrRequestFailed)
}
