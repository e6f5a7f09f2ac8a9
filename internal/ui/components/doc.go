// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the memchat TUI.
//
// # Key Types
//
//   - MessageItem: one message bubble with its collapsible memory citations
//   - TypingIndicator: spinner row shown while a reply is outstanding
//   - Header: title bar with the backend connection status
//   - MarkdownRenderer: optional glamour rendering of assistant replies
//
// Components render only. They make no backend calls and never modify the
// messages they display.
package components
