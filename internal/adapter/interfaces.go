// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the voyager server.
//
// [ServerAdapter] hides the protocol from the client services. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPServerAdapter]).
// Non-2xx responses become a [*ResponseError] that wraps one of the sentinel
// errors in errors.go, so callers can use [errors.Is] on the status class and
// read the server message from the error itself.
package adapter

import (
	"context"

	"github.com/MKhiriev/voyager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the voyager
// server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before the first
	// successful Register or Login.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)

	// Login authenticates by email and password and stores the returned
	// token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)

	// GetUser fetches the public profile of userID.
	GetUser(ctx context.Context, userID string) (models.UserProfile, error)

	// ListPosts returns posts newest first, restricted to filter.UserID when
	// it is set.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	GetPost(ctx context.Context, postID string) (models.Post, error)

	// CreatePost, UpdatePost and DeletePost require a stored token; without
	// one they fail with [ErrNoToken] before any request is sent.
	CreatePost(ctx context.Context, text string) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, patch models.PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)
}
