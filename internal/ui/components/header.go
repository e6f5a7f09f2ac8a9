// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/memchat-tui/internal/ui/styles"
	"github.com/jeranaias/memchat-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// ConnStatus is the result of the backend health check.
type ConnStatus int

const (
	ConnUnknown ConnStatus = iota
	ConnOnline
	ConnOffline
)

// String returns the display string for the status.
func (s ConnStatus) String() string {
	switch s {
	case ConnOnline:
		return "connected"
	case ConnOffline:
		return "offline"
	default:
		return "checking"
	}
}

// Header is the title bar: title on the left, backend status on the right.
type Header struct {
	Title  string
	Status ConnStatus
	Width  int
	theme  *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme, title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetStatus updates the connection status.
func (h *Header) SetStatus(status ConnStatus) {
	h.Status = status
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}
	// Header padding.
	inner := width - 2

	var statusStyle lipgloss.Style
	indicator := styles.StatusIndicators.Info
	switch h.Status {
	case ConnOnline:
		statusStyle = h.theme.StatusOnline
		indicator = styles.StatusIndicators.Active
	case ConnOffline:
		statusStyle = h.theme.StatusOffline
		indicator = styles.StatusIndicators.Error
	default:
		statusStyle = h.theme.StatusUnknown
	}
	status := statusStyle.Render(indicator + " " + h.Status.String())

	titleWidth := inner - lipgloss.Width(status) - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, titleWidth))

	gap := inner - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return h.theme.Header.Width(width).Render(title + strings.Repeat(" ", gap) + status)
}
