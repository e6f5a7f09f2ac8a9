// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// userLabelStyle and assistantLabelStyle match the TUI bubble borders
	userLabelStyle = lipgloss.NewStyle().
			Foreground(styles.UserBubbleBorder).
			Bold(true)
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(styles.AssistantBubbleBorder).
				Bold(true)

	// errorStyle is used for failed replies and command errors
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// memoryStyle is used for citation headings
	memoryStyle = lipgloss.NewStyle().
			Foreground(styles.MemoryBorder)

	// dimStyle is used for timestamps and metadata
	dimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
