// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the voyager terminal client runtime.
//
// It runs the terminal UI together with the background workers (the feed
// refresher) under one context and stops the workers when the UI exits.
package client
