// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	StatusOnline  lipgloss.Style
	StatusOffline lipgloss.Style
	StatusUnknown lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	OtherBubble     lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	OtherLabel     lipgloss.Style
	Timestamp      lipgloss.Style
	ErrorMarker    lipgloss.Style
	SelectedMarker lipgloss.Style

	// ==========================================================================
	// MEMORY CITATION STYLES
	// ==========================================================================

	MemoryToggle         lipgloss.Style
	MemoryToggleSelected lipgloss.Style
	MemoryPanel          lipgloss.Style
	MemoryContent        lipgloss.Style
	MemoryMeta           lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	InputDisabled  lipgloss.Style

	// ==========================================================================
	// SPINNER AND FOOTER STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	HelpBar      lipgloss.Style
	EmptyState   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.StatusOnline = lipgloss.NewStyle().Foreground(Emerald)
	t.StatusOffline = lipgloss.NewStyle().Foreground(Rose)
	t.StatusUnknown = lipgloss.NewStyle().Foreground(TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.OtherBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.UserLabel = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.AssistantLabel = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	t.OtherLabel = lipgloss.NewStyle().Bold(true).Foreground(TextSecondary)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)
	t.ErrorMarker = lipgloss.NewStyle().Bold(true).Foreground(Rose)
	t.SelectedMarker = lipgloss.NewStyle().Bold(true).Foreground(Cyan)

	// Memory citations
	t.MemoryToggle = lipgloss.NewStyle().
		Foreground(Amber).
		Underline(true)

	t.MemoryToggleSelected = t.MemoryToggle.
		Background(SelectionBg).
		Bold(true)

	t.MemoryPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(MemoryBorder).
		PaddingLeft(1)

	t.MemoryContent = lipgloss.NewStyle().Foreground(TextPrimary)
	t.MemoryMeta = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Spinner and footer
	t.Spinner = lipgloss.NewStyle().Foreground(Purple)
	t.ThinkingText = lipgloss.NewStyle().Foreground(TextSecondary).Italic(true)
	t.HelpBar = lipgloss.NewStyle().Padding(0, 1)
	t.EmptyState = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// BubbleWidth returns the width message bubbles should wrap to.
func (t *Theme) BubbleWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return max(t.Width-2, 10)
	case LayoutMedium:
		return t.Width - 8
	default:
		return min(t.Width-16, 120)
	}
}

// MarkdownStyle names the glamour standard style matching the detected
// terminal: "ascii" without color support, otherwise "dark" or "light".
func (t *Theme) MarkdownStyle() string {
	switch {
	case t.ColorProfile == termenv.Ascii:
		return "ascii"
	case t.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
