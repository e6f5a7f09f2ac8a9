// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/memchat-tui/internal/backend"
	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/model"
)

// =============================================================================
// BACKEND MESSAGES
// =============================================================================

// HistoryLoadedMsg delivers the result of the startup history fetch.
type HistoryLoadedMsg struct {
	Messages []model.Message
	Err      error
}

// ReplyMsg delivers the result of one send.
type ReplyMsg struct {
	Response *backend.ChatResponse
	Err      error
}

// HealthMsg reports whether the backend answered the health check.
type HealthMsg struct {
	Status string
	Err    error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries UI settings from a config file that changed on disk.
type ConfigReloadedMsg struct {
	UI config.UIConfig
}
