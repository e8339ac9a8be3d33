// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	next      key.Binding
	prev      key.Binding
	quit      key.Binding
	forceQuit key.Binding
	version   key.Binding
	logout    key.Binding
	newPost   key.Binding
	refresh   key.Binding
	mine      key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	submit    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	back:      key.NewBinding(key.WithKeys("esc")),
	next:      key.NewBinding(key.WithKeys("tab")),
	prev:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	mine:      key.NewBinding(key.WithKeys("m")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
