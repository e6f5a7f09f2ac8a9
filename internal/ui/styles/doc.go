// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the memchat TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. Theme bundles the styles used by the header, message bubbles,
memory citations, input and footer.

# Usage

	theme := styles.NewTheme()
	theme.SetSize(width, height)
	bubble := theme.UserBubble.Width(theme.BubbleWidth()).Render(text)

# Accessibility

Status output never relies on color alone: RenderSuccess, RenderError and
friends prefix the text with an ASCII indicator from StatusIndicators.
*/
package styles
