// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the TUI.
//
// Model is a Bubble Tea model that shows the conversation held by a
// session.Session, sends the draft to the backend and renders replies with
// their memory citations.
//
// # Lifecycle
//
// Init fetches the history and checks the backend. Each send appends the
// user message at once, blurs the input and shows the typing indicator
// until the ReplyMsg arrives. Failed sends become a fallback error message.
// Clearing empties the view without cancelling an outstanding request.
//
// # Usage
//
//	m := chat.New(styles.NewTheme(), backend.NewClient(), nil, cfg.UI)
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	_, err := p.Run()
package chat
