// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertOwner(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  string
		callerID string
		wantErr  bool
	}{
		{name: "owner", ownerID: "u1", callerID: "u1"},
		{name: "other user", ownerID: "u1", callerID: "u2", wantErr: true},
		{name: "no caller", ownerID: "u1", callerID: "", wantErr: true},
		{name: "no owner", ownerID: "", callerID: "u1", wantErr: true},
		{name: "both empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertOwner(tt.ownerID, tt.callerID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
				return
			}
			assert.NoError(t, err)
		})
	}
}
