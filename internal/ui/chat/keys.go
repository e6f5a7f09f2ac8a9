// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the conversation view.
type KeyMap struct {
	Send         key.Binding
	Clear        key.Binding
	NextMemory   key.Binding
	PrevMemory   key.Binding
	ToggleMemory key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("Enter", "send"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear chat"),
		),
		NextMemory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next memories"),
		),
		PrevMemory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "prev memories"),
		),
		ToggleMemory: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "show/hide memories"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc/C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Clear, k.NextMemory, k.ToggleMemory, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Clear, k.Quit},
		{k.NextMemory, k.PrevMemory, k.ToggleMemory},
		{k.PageUp, k.PageDown},
	}
}
