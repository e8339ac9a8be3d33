// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the voyager client.
// It defines the Worker interface and a Workers aggregate that runs several
// workers under one context.
package workers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sender delivers a message to a running Bubble Tea program. *tea.Program
// implements it.
type Sender interface {
	Send(msg tea.Msg)
}
