// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a short text published by a user.
//
// UserID is fixed at creation and is the only input to ownership checks.
type Post struct {
	ID     string `json:"id" bson:"_id"`
	UserID string `json:"user_id" bson:"user_id"`
	Text   string `json:"text" bson:"text"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	// Author is filled on reads and never persisted.
	Author *UserProfile `json:"author,omitempty" bson:"-"`
}

// TableName returns the SQL table (or Mongo collection) that stores posts.
func (p Post) TableName() string {
	return "posts"
}

// PostPatch carries the client-editable fields of a post. Nil fields are left
// untouched.
type PostPatch struct {
	Text *string `json:"text,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Text == nil
}

// PostUpdate is the store-level update of a single post. The write is scoped
// to ID and UserID together.
type PostUpdate struct {
	ID        string
	UserID    string
	Text      *string
	UpdatedAt time.Time
}

// PostFilter narrows ListPosts. The zero value selects every post.
type PostFilter struct {
	UserID string
}
