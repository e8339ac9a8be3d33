// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	base := context.Background()

	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{name: "set by WithUserID", ctx: WithUserID(base, "0190f3c4-author"), wantID: "0190f3c4-author", wantOK: true},
		{name: "nothing stored", ctx: base},
		{name: "empty id", ctx: WithUserID(base, "")},
		{name: "non-string value", ctx: context.WithValue(base, UserIDCtxKey, 42)},
		//nolint:staticcheck // a bare string key must not collide with UserIDCtxKey
		{name: "bare string key", ctx: context.WithValue(base, "userID", "0190f3c4-author")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestWithUserID_Overrides(t *testing.T) {
	ctx := WithUserID(WithUserID(context.Background(), "first"), "second")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "second", id)
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
