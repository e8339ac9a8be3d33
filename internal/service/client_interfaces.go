// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voyager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService signs the terminal client in and out.
type ClientAuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, request models.RegisterRequest) (models.Session, error)

	// Login opens a session for an existing account.
	Login(ctx context.Context, request models.LoginRequest) (models.Session, error)

	// Logout forgets the session and its token.
	Logout()

	// Session returns the open session, if any.
	Session() (models.Session, bool)
}

// ClientPostService reads the feed and manages the signed-in user's posts.
type ClientPostService interface {
	Feed(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	CreatePost(ctx context.Context, text string) (models.Post, error)
	EditPost(ctx context.Context, postID, text string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	// IsOwn reports whether post belongs to the signed-in user. The server
	// enforces ownership regardless; this only drives what the UI offers.
	IsOwn(post models.Post) bool
}

type ClientUserService interface {
	GetUser(ctx context.Context, userID string) (models.UserProfile, error)
	ServerInfo(ctx context.Context) (models.AppInfo, error)
}
