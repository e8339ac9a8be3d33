// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/tui"
	"github.com/MKhiriev/voyager/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(ui UI, cfg config.ClientConfig, logger *logger.Logger) *App {
	refresher := workers.NewFeedRefresher(cfg.Adapter.RefreshInterval, ui, tui.RefreshFeed{}, logger)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(refresher),
		logger:  logger,
	}
}

// Run blocks until the UI exits. Cancelling ctx stops the UI as well; that
// is a normal exit and returns nil.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.workers.Run(ctx)
	}()

	err := a.ui.Run()
	parentDone := ctx.Err() != nil

	cancel()
	<-done

	if err != nil && parentDone && errors.Is(err, tea.ErrProgramKilled) {
		a.logger.Info().Str("func", "*App.Run").Msg("client stopped by signal")
		return nil
	}
	return err
}
