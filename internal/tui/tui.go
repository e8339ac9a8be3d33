// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the voyager client
// on top of Bubble Tea.
//
// A single [RootModel] routes between pages (menu, login, register, feed,
// post, compose). Pages talk to the server only through the client services
// and switch pages by emitting [NavigateTo].
package tui

import (
	"context"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the Bubble Tea program of the client.
type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New builds the page set and the program. The program is bound to ctx:
// cancelling it stops the UI.
func New(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	root := NewRootModel(ctx, newPages(ctx, services), pageMenu, buildInfo, services.UserService)

	return &TUI{
		program: tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)),
		logger:  logger,
	}
}

func newPages(ctx context.Context, services *service.ClientServices) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(services.AuthService),
		pageLogin:    NewLoginModel(ctx, services.AuthService),
		pageRegister: NewRegisterModel(ctx, services.AuthService),
		pageFeed:     NewFeedModel(ctx, services.PostService, services.AuthService),
		pagePost:     NewDetailModel(ctx, services.PostService),
		pageCompose:  NewComposeModel(ctx, services.PostService),
	}
}

// Run blocks until the user quits or the context is cancelled.
func (t *TUI) Run() error {
	if _, err := t.program.Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
		return err
	}
	return nil
}

// Send delivers msg to the running program. It is safe to call from other
// goroutines and is a no-op once the program has exited.
func (t *TUI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
