// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

func TestTypingIndicator_InactiveIsEmpty(t *testing.T) {
	ti := NewTypingIndicator(styles.NewTheme())
	assert.False(t, ti.IsActive())
	assert.Equal(t, time.Duration(0), ti.Elapsed())
	assert.Empty(t, ti.View())
}

func TestTypingIndicator_ShowsElapsed(t *testing.T) {
	ti := NewTypingIndicator(styles.NewTheme())
	assert.NotNil(t, ti.Start())

	view := ti.View()
	assert.Contains(t, view, "assistant is typing")
	assert.NotContains(t, view, "s)")

	ti.startTime = time.Now().Add(-3 * time.Second)
	assert.Contains(t, ti.View(), "(3s)")

	ti.Stop()
	assert.Empty(t, ti.View())
	assert.Equal(t, time.Duration(0), ti.Elapsed())
}
