// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

// envelope mirrors models.Response with a typed Data field.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
}

// call describes one request to the server.
type call struct {
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       any
	auth       bool
}

type httpServerAdapter struct {
	client *utils.APIClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter]. The address
// may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewAPIClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/api/users/register", request)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	return h.authenticate(ctx, "/api/users/login", request)
}

// authenticate posts credentials to path and stores the issued token. The
// Authorization response header takes precedence over the body token.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResult, error) {
	result, resp, err := send[models.Empty](ctx, h, call{method: http.MethodPost, path: path, body: body})
	if err != nil {
		return models.AuthResult{}, err
	}

	token := result.Token
	if header := resp.Header().Get(utils.AuthorizationHeader); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
	}
	if token == "" {
		return models.AuthResult{}, fmt.Errorf("%w: no token issued", ErrInvalidResponse)
	}

	h.SetToken(token)
	return models.AuthResult{UserID: result.UserID, Token: token}, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.UserProfile, error) {
	result, _, err := send[models.UserProfile](ctx, h, call{
		method:     http.MethodGet,
		path:       "/api/users/{id}",
		pathParams: map[string]string{"id": userID},
	})
	return result.Data, err
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	c := call{method: http.MethodGet, path: "/api/posts"}
	if filter.UserID != "" {
		c.query = map[string]string{"user_id": filter.UserID}
	}

	result, _, err := send[[]models.Post](ctx, h, c)
	return result.Data, err
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID string) (models.Post, error) {
	result, _, err := send[models.Post](ctx, h, call{
		method:     http.MethodGet,
		path:       "/api/posts/{id}",
		pathParams: map[string]string{"id": postID},
	})
	return result.Data, err
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, text string) (models.Post, error) {
	result, _, err := send[models.Post](ctx, h, call{
		method: http.MethodPost,
		path:   "/api/posts",
		body:   models.CreatePostRequest{Text: text},
		auth:   true,
	})
	return result.Data, err
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID string, patch models.PostPatch) (models.Post, error) {
	result, _, err := send[models.Post](ctx, h, call{
		method:     http.MethodPut,
		path:       "/api/posts/{id}",
		pathParams: map[string]string{"id": postID},
		body:       patch,
		auth:       true,
	})
	return result.Data, err
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID string) error {
	_, _, err := send[models.Empty](ctx, h, call{
		method:     http.MethodDelete,
		path:       "/api/posts/{id}",
		pathParams: map[string]string{"id": postID},
		auth:       true,
	})
	return err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	result, _, err := send[models.AppInfo](ctx, h, call{method: http.MethodGet, path: "/api/version"})
	return result.Data, err
}

// send executes c and decodes the success envelope into T.
func send[T any](ctx context.Context, h *httpServerAdapter, c call) (envelope[T], *resty.Response, error) {
	var result envelope[T]

	req := h.client.R().
		SetContext(ctx).
		SetPathParams(c.pathParams).
		SetQueryParams(c.query)

	if c.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(c.body)
	}
	if c.auth {
		token := h.Token()
		if token == "" {
			return result, nil, ErrNoToken
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		h.logger.Err(err).Str("method", c.method).Str("path", c.path).Msg("request failed")
		return result, nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", c.method).Str("path", c.path).Msg("request rejected")
		return result, resp, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, resp, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return result, resp, nil
}
