// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/voyager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Email is unique across all users.
type UserRepository interface {
	// CreateUser inserts user as given and returns the stored record.
	// Returns ErrEmailAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email matches byte-exact.
	// Returns ErrNoUserWasFound if there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound if there is no such user.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// PostRepository persists posts. Update and delete are scoped by both the
// post id and its owner, so a write can never touch another user's post.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// FindPostByID returns ErrPostNotFound if there is no such post.
	FindPostByID(ctx context.Context, postID string) (models.Post, error)

	// ListPosts returns posts matching filter, newest first.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// UpdatePost applies the non-nil fields of update and returns the stored
	// post. Returns ErrPostNotFound if no post has both update.ID and
	// update.UserID.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)

	// DeletePost removes the post with postID owned by userID.
	// Returns ErrPostNotFound if nothing was removed.
	DeletePost(ctx context.Context, postID, userID string) error
}

// ErrorClassificator inspects driver errors for the SQL backends.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
