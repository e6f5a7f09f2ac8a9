// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/session"
	"github.com/jeranaias/memchat-tui/internal/ui/components"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the conversation view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// State
	session *session.Session
	client  Backend
	logger  *slog.Logger

	// Per-message render state, keyed by message ID
	items    map[string]*components.MessageItem
	selected string

	// Presentation settings
	ui       config.UIConfig
	printer  *message.Printer
	markdown *components.MarkdownRenderer

	// UI Components
	header   *components.Header
	typing   components.TypingIndicator
	viewport viewport.Model
	input    textinput.Model
	help     help.Model
	keyMap   KeyMap
}

// New creates the conversation view. sess may be nil for a fresh session.
func New(theme *styles.Theme, client Backend, sess *session.Session, ui config.UIConfig) Model {
	if sess == nil {
		sess = session.New()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.PromptStyle = theme.InputPrompt
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := Model{
		theme:    theme,
		session:  sess,
		client:   client,
		logger:   slog.Default().With("component", "chat"),
		items:    make(map[string]*components.MessageItem),
		header:   components.NewHeader(theme, ui.Title),
		typing:   components.NewTypingIndicator(theme),
		viewport: vp,
		input:    ti,
		help:     help.New(),
		keyMap:   DefaultKeyMap(),
	}
	m.applyUI(ui)
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init fetches the history and checks the backend.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		fetchHistoryCmd(m.client),
		healthCmd(m.client),
	)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Session returns the state store behind the view.
func (m Model) Session() *session.Session {
	return m.session
}

// Selected returns the ID of the message whose memory toggle is selected.
func (m Model) Selected() string {
	return m.selected
}

// Item returns the render state for a message.
func (m Model) Item(id string) (*components.MessageItem, bool) {
	item, ok := m.items[id]
	return item, ok
}

// InputValue returns the current draft text.
func (m Model) InputValue() string {
	return m.input.Value()
}

// InputEnabled reports whether the input accepts typing.
func (m Model) InputEnabled() bool {
	return m.input.Focused()
}

// ConnStatus returns the header's connection status.
func (m Model) ConnStatus() components.ConnStatus {
	return m.header.Status
}

// applyUI installs presentation settings.
func (m *Model) applyUI(ui config.UIConfig) {
	if ui.TimeFormat == "" {
		ui.TimeFormat = components.DefaultTimeFormat
	}
	m.ui = ui
	m.header.Title = ui.Title
	m.printer = components.NewPrinter(ui.Locale)

	m.markdown = nil
	if ui.Markdown {
		m.markdown = components.NewMarkdownRenderer(m.theme.MarkdownStyle())
	}
}
