// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fieldWidth = 40

// formField describes one labelled text input of a form.
type formField struct {
	label    string
	secret   bool
	limit    int
	trimmed  bool
	required bool
}

// inputForm is a vertical list of text inputs with tab navigation.
type inputForm struct {
	fields     []formField
	inputs     []textinput.Model
	focus      int
	labelWidth int
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(field.label)
		in.Width = fieldWidth
		if field.limit > 0 {
			in.CharLimit = field.limit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.inputs[i] = in
		f.labelWidth = max(f.labelWidth, len(field.label))
	}
	f.inputs[0].Focus()
	return f
}

// update handles focus keys and forwards the rest to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Letter bindings of keys.up/keys.down are text here.
		switch {
		case key.Matches(keyMsg, keys.next), keyMsg.Type == tea.KeyDown:
			f.move(1)
			return nil
		case key.Matches(keyMsg, keys.prev), keyMsg.Type == tea.KeyUp:
			f.move(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// value returns the i-th input, trimmed unless the field keeps whitespace.
func (f *inputForm) value(i int) string {
	if f.fields[i].trimmed {
		return strings.TrimSpace(f.inputs[i].Value())
	}
	return f.inputs[i].Value()
}

// missing returns the label of the first empty required field.
func (f *inputForm) missing() (string, bool) {
	for i, field := range f.fields {
		if field.required && f.value(i) == "" {
			return field.label, true
		}
	}
	return "", false
}

func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *inputForm) view(b *strings.Builder) {
	for i, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [", f.labelWidth, field.label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
}
