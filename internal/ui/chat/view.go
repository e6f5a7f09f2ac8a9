// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/memchat-tui/internal/ui/components"
)

const emptyConversationText = "No messages yet. Type below to start chatting."

// View renders the full screen: header, conversation, input and help.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.viewport.View(),
		m.renderInput(),
		m.theme.HelpBar.Render(m.help.View(m.keyMap)),
	)
}

// chromeHeight is the number of rows taken by everything but the viewport.
func (m Model) chromeHeight() int {
	return lipgloss.Height(m.header.View()) +
		lipgloss.Height(m.renderInput()) +
		lipgloss.Height(m.theme.HelpBar.Render(m.help.View(m.keyMap)))
}

func (m Model) renderInput() string {
	line := m.input.View()
	if m.session.Waiting() {
		line = m.theme.InputDisabled.Render("waiting for reply...")
	}
	return m.theme.InputContainer.Width(max(m.width, 1)).Render(line)
}

// =============================================================================
// CONVERSATION RENDERING
// =============================================================================

// refresh syncs per-message render state with the session and re-renders
// the viewport content. bottom jumps to the newest content.
func (m *Model) refresh(bottom bool) {
	m.viewport.SetContent(m.renderConversation())
	if bottom {
		m.viewport.GotoBottom()
	}
}

// renderConversation renders every message followed by the typing
// indicator while a reply is outstanding.
func (m *Model) renderConversation() string {
	messages := m.session.Messages()

	live := make(map[string]bool, len(messages))
	blocks := make([]string, 0, len(messages)+1)

	opts := components.RenderOptions{
		Theme:      m.theme,
		Width:      m.theme.BubbleWidth(),
		TimeFormat: m.ui.TimeFormat,
		Printer:    m.printer,
		Markdown:   m.markdown,
	}

	for _, msg := range messages {
		live[msg.ID] = true
		item, ok := m.items[msg.ID]
		if !ok {
			item = components.NewMessageItem(msg)
			m.items[msg.ID] = item
		}
		blocks = append(blocks, item.View(opts, msg.ID == m.selected))
	}

	for id := range m.items {
		if !live[id] {
			delete(m.items, id)
		}
	}
	if !live[m.selected] {
		m.selected = ""
	}

	if m.typing.IsActive() {
		blocks = append(blocks, m.typing.View())
	}

	if len(blocks) == 0 {
		return m.theme.EmptyState.Render(emptyConversationText)
	}
	return strings.Join(blocks, "\n\n")
}
