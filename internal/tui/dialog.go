// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// dialog is a boxed prompt drawn under the page content.
type dialog struct {
	title   string
	message string
	hint    string
}

func confirmDialog(message string) *dialog {
	return &dialog{message: message, hint: "y: yes │ n: no"}
}

func errorDialog(message string) *dialog {
	return &dialog{title: "Error", message: message, hint: "enter/esc: close"}
}

func (d *dialog) View() string {
	parts := make([]string, 0, 3)
	if d.title != "" {
		parts = append(parts, errorStyle.Render(d.title))
	}
	parts = append(parts, d.message, helpStyle.Render(d.hint))
	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}
