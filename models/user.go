// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account as persisted by the store.
//
// Password always holds the bcrypt hash produced at registration; the
// plaintext never reaches this struct after the auth service has hashed it.
type User struct {
	// UserID is the opaque identifier assigned at registration (UUIDv7).
	UserID string `json:"id" bson:"_id"`

	// Name is the display name supplied at registration.
	Name string `json:"name" bson:"name"`

	// Email is the unique login key. It is compared byte-exact.
	Email string `json:"email" bson:"email"`

	// Password is the salted bcrypt hash. It is never serialised to JSON.
	Password string `json:"-" bson:"password"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TableName returns the SQL table (or Mongo collection) that stores users.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of u with the password hash stripped.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserProfile is what other users may see about an account.
type UserProfile struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
