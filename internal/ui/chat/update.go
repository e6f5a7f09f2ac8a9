// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memchat-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case HistoryLoadedMsg:
		return m.handleHistory(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case HealthMsg:
		if msg.Err != nil {
			m.logger.Warn("backend health check failed", "error", msg.Err)
			m.header.SetStatus(components.ConnOffline)
		} else {
			m.header.SetStatus(components.ConnOnline)
		}
		return m, nil

	case ConfigReloadedMsg:
		mouse := m.ui.Mouse
		m.applyUI(msg.UI)
		m.refresh(false)
		switch {
		case msg.UI.Mouse && !mouse:
			return m, tea.EnableMouseCellMotion
		case !msg.UI.Mouse && mouse:
			return m, tea.DisableMouse
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		if m.typing.IsActive() {
			m.refresh(m.viewport.AtBottom())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.help.Width = m.width

	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(m.height-m.chromeHeight(), 1)

	// Container padding plus the prompt.
	m.input.Width = max(m.width-2-len(m.input.Prompt)-1, 10)

	m.refresh(m.viewport.AtBottom())
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Send):
		return m.send()

	case key.Matches(msg, m.keyMap.Clear):
		m.session.Clear()
		m.selected = ""
		m.refresh(true)
		return m, nil

	case key.Matches(msg, m.keyMap.NextMemory):
		m.moveSelection(1)
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevMemory):
		m.moveSelection(-1)
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleMemory):
		if item, ok := m.items[m.selected]; ok {
			item.Toggle()
			m.refresh(false)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetDraft(m.input.Value())
	return m, cmd
}

// send runs the send transition: capture the draft, append it, mark the
// view as waiting and issue exactly one request.
func (m Model) send() (tea.Model, tea.Cmd) {
	if m.session.Waiting() {
		return m, nil
	}

	m.session.SetDraft(m.input.Value())
	text, ok := m.session.BeginSend()
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	tick := m.typing.Start()
	m.refresh(true)

	m.logger.Debug("sending message", "length", len(text))
	return m, tea.Batch(sendCmd(m.client, text), tick)
}

func (m Model) handleHistory(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if m.session.ApplyHistory(msg.Messages, msg.Err) {
		m.refresh(true)
	}
	return m, nil
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.session.CompleteSend(msg.Response, msg.Err)
	m.typing.Stop()
	cmd := m.input.Focus()
	m.refresh(true)
	return m, cmd
}

// =============================================================================
// SELECTION
// =============================================================================

// moveSelection moves the memory toggle cursor among messages that carry
// citations, wrapping at either end. With nothing selected both directions
// start at the most recent one.
func (m *Model) moveSelection(delta int) {
	var ids []string
	for _, msg := range m.session.Messages() {
		if msg.HasMemories() {
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) == 0 {
		m.selected = ""
		return
	}

	current := -1
	for i, id := range ids {
		if id == m.selected {
			current = i
			break
		}
	}
	if current < 0 {
		m.selected = ids[len(ids)-1]
		return
	}
	m.selected = ids[(current+delta+len(ids))%len(ids)]
}
