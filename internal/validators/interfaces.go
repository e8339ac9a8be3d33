// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches the services.
//
// A Validator accepts any of the request models it knows about and may be
// scoped to a subset of fields by passing their names. Validators never touch
// storage; rules that need a lookup (email taken, post exists) stay in the
// services.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
