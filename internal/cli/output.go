// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/model"
	"github.com/jeranaias/memchat-tui/internal/ui/components"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
	"github.com/jeranaias/memchat-tui/internal/util"
)

// =============================================================================
// CONVERSATION OUTPUT
// =============================================================================

// transcript writes conversation messages as plain or styled text.
type transcript struct {
	w          io.Writer
	styled     bool
	width      int
	timeFormat string
	numbers    *message.Printer
	markdown   *components.MarkdownRenderer
}

// newTranscript prepares output for w. Colors and markdown are used only
// when w is an interactive terminal.
func newTranscript(w io.Writer, ui config.UIConfig) *transcript {
	t := &transcript{
		w:          w,
		styled:     isStyledWriter(w),
		width:      DefaultTerminalWidth,
		timeFormat: ui.TimeFormat,
		numbers:    components.NewPrinter(ui.Locale),
	}
	if t.styled {
		t.width = GetTerminalWidth()
		if ui.Markdown {
			t.markdown = components.NewMarkdownRenderer(styles.NewTheme().MarkdownStyle())
		}
	}
	return t
}

func (t *transcript) style(s lipgloss.Style, text string) string {
	if !t.styled {
		return text
	}
	return s.Render(text)
}

// message writes one message: a label line, the wrapped body, and the
// citations of assistant replies.
func (t *transcript) message(msg model.Message) {
	labelStyle := assistantLabelStyle
	if msg.IsUser() {
		labelStyle = userLabelStyle
	}

	header := t.style(labelStyle, msg.Role.DisplayName())
	if msg.IsError {
		header += " " + t.style(errorStyle, "[X] error")
	}
	if ts := components.FormatTimestamp(msg.Timestamp, t.timeFormat); ts != "" {
		header += "  " + t.style(dimStyle, ts)
	}
	fmt.Fprintln(t.w, header)

	body := util.WordWrap(msg.Content, t.width-2)
	if t.markdown != nil && !msg.IsUser() && !msg.IsError {
		body = t.markdown.Render(msg.Content, t.width-2)
	}
	fmt.Fprintln(t.w, body)

	if msg.HasMemories() {
		t.memories(msg.Memories)
	}
	fmt.Fprintln(t.w)
}

// memories writes the citation list, one block per citation.
func (t *transcript) memories(mems []model.MemoryCitation) {
	fmt.Fprintln(t.w, t.style(memoryStyle, components.ToggleLabel(len(mems), false)+":"))
	for i, mem := range mems {
		content := util.WordWrap(mem.Content, t.width-6)
		content = strings.ReplaceAll(content, "\n", "\n     ")
		fmt.Fprintf(t.w, "  %d. %s\n", i+1, content)
		meta := fmt.Sprintf("%s  Relevance: %s",
			components.FormatRecallCount(t.numbers, mem.RecallCount),
			components.FormatRelevance(mem.Relevance))
		fmt.Fprintf(t.w, "     %s\n", t.style(dimStyle, meta))
	}
}

// conversation writes every message in order, or a hint when there are none.
func (t *transcript) conversation(msgs []model.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(t.w, t.style(dimStyle, "No messages yet."))
		return
	}
	for _, msg := range msgs {
		t.message(msg)
	}
}

// =============================================================================
// JSON OUTPUT
// =============================================================================

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
