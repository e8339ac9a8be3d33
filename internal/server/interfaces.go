// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the transport servers.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts down.
	// It returns the transport error, if any.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
