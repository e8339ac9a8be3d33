// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the signed-in identity held by the client.
type Session struct {
	UserID string
	Name   string
	Email  string
}
