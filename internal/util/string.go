// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: all helpers measure terminal columns, not bytes or runes, so
// CJK and emoji content lines up inside bubbles.

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when anything was cut and there is room for it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// WordWrap wraps text on word boundaries so no line exceeds width columns.
// Existing newlines are kept. Words wider than width are hard-wrapped.
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		wrapLine(&out, line, width)
	}
	return out.String()
}

func wrapLine(out *strings.Builder, line string, width int) {
	words := strings.Fields(line)
	current := ""
	currentWidth := 0

	flush := func() {
		if current != "" {
			out.WriteString(current)
			out.WriteByte('\n')
		}
		current, currentWidth = "", 0
	}

	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the budget; emit it anyway.
				r := []rune(word)
				head = string(r[:1])
			}
			out.WriteString(head)
			out.WriteByte('\n')
			word = word[len(head):]
		}
		if word == "" {
			continue
		}

		w := runewidth.StringWidth(word)
		switch {
		case current == "":
			current, currentWidth = word, w
		case currentWidth+1+w <= width:
			current += " " + word
			currentWidth += 1 + w
		default:
			flush()
			current, currentWidth = word, w
		}
	}

	out.WriteString(current)
}
