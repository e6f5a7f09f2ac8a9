// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/jeranaias/memchat-tui/internal/model"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
	"github.com/jeranaias/memchat-tui/internal/util"
)

// =============================================================================
// MESSAGE ITEM COMPONENT
// =============================================================================

// RenderOptions carries the view-wide settings every MessageItem renders with.
type RenderOptions struct {
	Theme      *styles.Theme
	Width      int
	TimeFormat string
	Printer    *message.Printer
	Markdown   *MarkdownRenderer // nil renders assistant content as plain text
}

// MessageItem renders one message. Its only state is whether the memory
// citations are expanded; it never modifies the message.
type MessageItem struct {
	msg      model.Message
	expanded bool
}

// NewMessageItem creates a collapsed item for msg.
func NewMessageItem(msg model.Message) *MessageItem {
	return &MessageItem{msg: msg}
}

// Message returns the rendered message.
func (i *MessageItem) Message() model.Message {
	return i.msg
}

// HasToggle reports whether the item shows a memories toggle.
func (i *MessageItem) HasToggle() bool {
	return i.msg.HasMemories()
}

// Expanded reports whether the citations are shown.
func (i *MessageItem) Expanded() bool {
	return i.expanded
}

// Toggle flips the citations between shown and hidden. Items without
// citations ignore it.
func (i *MessageItem) Toggle() {
	if !i.HasToggle() {
		return
	}
	i.expanded = !i.expanded
}

// ToggleLabel returns the current toggle text, or "" without citations.
func (i *MessageItem) ToggleLabel() string {
	if !i.HasToggle() {
		return ""
	}
	return ToggleLabel(len(i.msg.Memories), i.expanded)
}

// View renders the item. selected highlights the memory toggle.
func (i *MessageItem) View(opts RenderOptions, selected bool) string {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	width := opts.Width
	if width < 10 {
		width = 10
	}

	bubbleStyle, labelStyle := i.styles(theme)
	// Border and padding take four columns.
	contentWidth := width - 4

	content := i.msg.Content
	if opts.Markdown != nil && i.msg.Role == model.RoleAssistant && !i.msg.IsError {
		content = opts.Markdown.Render(content, contentWidth)
	} else {
		content = util.WordWrap(content, contentWidth)
	}

	parts := []string{
		i.renderHeader(theme, labelStyle, opts.TimeFormat),
		bubbleStyle.Render(content),
	}

	if i.HasToggle() {
		parts = append(parts, i.renderToggle(theme, selected))
		if i.expanded {
			parts = append(parts, i.renderMemories(theme, opts.Printer, width))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (i *MessageItem) styles(theme *styles.Theme) (bubble, label lipgloss.Style) {
	switch {
	case i.msg.IsError:
		return theme.ErrorBubble, theme.AssistantLabel
	case i.msg.Role == model.RoleUser:
		return theme.UserBubble, theme.UserLabel
	case i.msg.Role == model.RoleAssistant:
		return theme.AssistantBubble, theme.AssistantLabel
	default:
		return theme.OtherBubble, theme.OtherLabel
	}
}

func (i *MessageItem) renderHeader(theme *styles.Theme, labelStyle lipgloss.Style, layout string) string {
	header := labelStyle.Render(i.msg.Role.Label())
	if i.msg.IsError {
		header += " " + theme.ErrorMarker.Render(styles.StatusIndicators.Error+" error")
	}
	if ts := FormatTimestamp(i.msg.Timestamp, layout); ts != "" {
		header += "  " + theme.Timestamp.Render(ts)
	}
	return header
}

func (i *MessageItem) renderToggle(theme *styles.Theme, selected bool) string {
	arrow := "+ "
	if i.expanded {
		arrow = "- "
	}

	marker := "  "
	style := theme.MemoryToggle
	if selected {
		marker = theme.SelectedMarker.Render("> ")
		style = theme.MemoryToggleSelected
	}
	return marker + style.Render(arrow+i.ToggleLabel())
}

func (i *MessageItem) renderMemories(theme *styles.Theme, p *message.Printer, width int) string {
	// Panel border, padding and indent.
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	lines := make([]string, 0, len(i.msg.Memories)*3)
	for n, mem := range i.msg.Memories {
		if n > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			theme.MemoryContent.Render(util.WordWrap(mem.Content, inner)),
			theme.MemoryMeta.Render(FormatRecallCount(p, mem.RecallCount)+"  Relevance: "+FormatRelevance(mem.Relevance)),
		)
	}

	return lipgloss.NewStyle().MarginLeft(2).Render(
		theme.MemoryPanel.Render(strings.Join(lines, "\n")),
	)
}
