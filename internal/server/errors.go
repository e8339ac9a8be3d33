// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoListeners = errors.New("no listener address is configured")
	errNoHandler   = errors.New("no handler for configured address")
)
