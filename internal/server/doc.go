// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports of voyager.
//
// Listeners are opened when the server is created, so a bad or busy address
// fails at startup. Run blocks until its context is cancelled or a transport
// stops with an error, then drains both transports within shutdownTimeout.
package server
