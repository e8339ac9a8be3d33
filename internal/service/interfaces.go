// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voyager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PostServiceWrapper

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token for userID that expires after the configured ttl.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify returns the identity carried by token or ErrTokenIsExpiredOrInvalid.
	Verify(ctx context.Context, token string) (models.Token, error)
}

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService manages posts. Every mutation is checked against the post
// owner with AssertOwner before it reaches the store.
type PostService interface {
	CreatePost(ctx context.Context, callerID, text string) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, callerID, postID string, patch models.PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, callerID, postID string) error
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (models.UserProfile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// PostServiceWrapper decorates a PostService, e.g. with input validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
