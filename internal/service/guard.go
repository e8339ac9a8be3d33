// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// AssertOwner permits an action only when callerID is the owner of the
// resource. An empty id on either side is treated as a mismatch.
func AssertOwner(ownerID, callerID string) error {
	if ownerID == "" || callerID == "" || ownerID != callerID {
		return ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}
