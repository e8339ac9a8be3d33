// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field names accepted by Validate to restrict which rules run.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "user_id"
	FieldText     = "text"
)
