// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON envelope written by every HTTP endpoint.
//
// Success is always present. Data carries the resource on success, Error a
// client-safe message on failure. Token and UserID are set by register and
// login only.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Token   string `json:"token,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// PostList is the gRPC response of ListPosts.
type PostList struct {
	Posts []Post `json:"posts"`
}
