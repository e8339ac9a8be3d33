// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Text string `json:"text"`
}

// PostIDRequest addresses a single post (gRPC Get/Delete).
type PostIDRequest struct {
	ID string `json:"id"`
}

// UpdatePostRequest addresses a post and carries the patch (gRPC Update).
type UpdatePostRequest struct {
	ID string `json:"id"`
	PostPatch
}

// ListPostsRequest carries the optional owner filter.
type ListPostsRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// UserIDRequest addresses a single user (gRPC GetUser).
type UserIDRequest struct {
	ID string `json:"id"`
}

// Empty is an explicitly empty payload.
type Empty struct{}
