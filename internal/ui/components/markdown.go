// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// MarkdownRenderer renders assistant content with glamour. Renderers are
// cached per wrap width since glamour bakes the width in at construction.
type MarkdownRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer. An empty style picks dark or
// light from the terminal background.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders content wrapped to width. It returns the original content
// when rendering fails.
func (m *MarkdownRenderer) Render(content string, width int) string {
	if m == nil || width <= 0 {
		return content
	}

	r, ok := m.renderers[width]
	if !ok {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if m.style != "" {
			opts = append(opts, glamour.WithStandardStyle(m.style))
		} else {
			opts = append(opts, glamour.WithAutoStyle())
		}

		var err error
		r, err = glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		m.renderers[width] = r
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
