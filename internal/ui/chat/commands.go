// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memchat-tui/internal/backend"
	"github.com/jeranaias/memchat-tui/internal/model"
)

// Backend is the subset of backend.Client the view talks to.
type Backend interface {
	History(ctx context.Context) ([]model.Message, error)
	Send(ctx context.Context, message string) (*backend.ChatResponse, error)
	Health(ctx context.Context) (*backend.HealthResponse, error)
}

// =============================================================================
// BACKEND COMMANDS
// =============================================================================

// Requests run without a cancellable context: clearing the chat or quitting
// never aborts them. The client's own timeout bounds each one.

func fetchHistoryCmd(client Backend) tea.Cmd {
	return func() tea.Msg {
		history, err := client.History(context.Background())
		return HistoryLoadedMsg{Messages: history, Err: err}
	}
}

func sendCmd(client Backend, text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Send(context.Background(), text)
		return ReplyMsg{Response: resp, Err: err}
	}
}

func healthCmd(client Backend) tea.Cmd {
	return func() tea.Msg {
		health, err := client.Health(context.Background())
		if err != nil {
			return HealthMsg{Err: err}
		}
		return HealthMsg{Status: health.Status}
	}
}
