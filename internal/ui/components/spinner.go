// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator is the transient "assistant is typing" row shown while a
// reply is outstanding.
type TypingIndicator struct {
	spinner   spinner.Model
	theme     *styles.Theme
	message   string
	isActive  bool
	startTime time.Time
}

// NewTypingIndicator creates an inactive indicator.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = styles.DotsSpinner.Bubbles()
	s.Style = theme.Spinner

	return TypingIndicator{
		spinner: s,
		theme:   theme,
		message: "assistant is typing",
	}
}

// Start activates the indicator and returns the first tick.
func (t *TypingIndicator) Start() tea.Cmd {
	t.isActive = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// IsActive returns whether the indicator is shown.
func (t *TypingIndicator) IsActive() bool {
	return t.isActive
}

// Elapsed returns how long the indicator has been running.
func (t *TypingIndicator) Elapsed() time.Duration {
	if !t.isActive || t.startTime.IsZero() {
		return 0
	}
	return time.Since(t.startTime)
}

// Update advances the animation. Ticks stop once the indicator is inactive.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}

	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, or "" when inactive. Waits of a second or
// more show the elapsed time.
func (t TypingIndicator) View() string {
	if !t.isActive {
		return ""
	}
	view := t.theme.ThinkingText.Render(t.message) + " " + t.spinner.View()
	if elapsed := t.Elapsed().Truncate(time.Second); elapsed >= time.Second {
		view += " " + t.theme.ThinkingText.Render("("+elapsed.String()+")")
	}
	return view
}
