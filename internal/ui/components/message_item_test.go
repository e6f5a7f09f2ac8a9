// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/memchat-tui/internal/model"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

func testOptions() RenderOptions {
	return RenderOptions{
		Theme:      styles.NewTheme(),
		Width:      60,
		TimeFormat: "15:04",
		Printer:    NewPrinter("en"),
	}
}

func citedMessage() model.Message {
	return model.NewAssistantMessage("you like tea", []model.MemoryCitation{
		{Content: "user likes green tea", RecallCount: 1234, Relevance: 0.8675},
		{Content: "user dislikes coffee", RecallCount: 2, Relevance: 0.5},
	}, time.Date(2025, 3, 1, 14, 5, 0, 0, time.Local))
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormatRelevance(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.8675, "86.8%"},
		{0, "0.0%"},
		{1, "100.0%"},
		{0.5, "50.0%"},
		{0.12345, "12.3%"},
		// halves land exactly and round up
		{0.0625, "6.3%"},
		{0.0025, "0.3%"},
		{0.0125, "1.3%"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRelevance(tc.in), "FormatRelevance(%v)", tc.in)
	}
}

func TestFormatTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6.25, "6.3"},
		{0.25, "0.3"},
		{0.75, "0.8"},
		{86.75, "86.8"},
		{2.5, "2.5"},
		{100, "100.0"},
		// 6.35 is stored just below the half, so it rounds down
		{6.35, "6.3"},
		{6.36, "6.4"},
		{math.Copysign(0, -1), "0.0"},
		{-0.25, "-0.3"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatTenths(tc.in), "formatTenths(%v)", tc.in)
	}
}

func TestFormatRecallCount(t *testing.T) {
	assert.Equal(t, "Recalled 3 times", FormatRecallCount(NewPrinter("en"), 3))
	assert.Equal(t, "Recalled 1,234 times", FormatRecallCount(NewPrinter("en"), 1234))
	assert.Equal(t, "Recalled 1.234 times", FormatRecallCount(NewPrinter("de"), 1234))
	assert.Equal(t, "Recalled 0 times", FormatRecallCount(nil, 0))
}

func TestNewPrinter_BadLocaleFallsBack(t *testing.T) {
	assert.Equal(t, "Recalled 1,000 times", FormatRecallCount(NewPrinter("!!"), 1000))
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 1, 14, 5, 0, 0, time.Local)
	ts := model.TimestampFromTime(at)

	assert.Equal(t, "02:05 PM", FormatTimestamp(ts, ""))
	assert.Equal(t, "14:05", FormatTimestamp(ts, "15:04"))
	assert.Equal(t, "", FormatTimestamp(0, ""))
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "2 Memories Used", ToggleLabel(2, false))
	assert.Equal(t, "Hide Memories", ToggleLabel(2, true))
}

// =============================================================================
// MESSAGE ITEM TESTS
// =============================================================================

func TestMessageItem_ToggleWithoutMemories(t *testing.T) {
	item := NewMessageItem(model.NewAssistantMessage("hi there", nil, time.Now()))

	assert.False(t, item.HasToggle())
	item.Toggle()
	assert.False(t, item.Expanded())
	assert.Equal(t, "", item.ToggleLabel())

	view := item.View(testOptions(), false)
	assert.Contains(t, view, "hi there")
	assert.NotContains(t, view, "Memories")
}

func TestMessageItem_Toggle(t *testing.T) {
	msg := citedMessage()
	item := NewMessageItem(msg)

	require.True(t, item.HasToggle())
	assert.False(t, item.Expanded(), "collapsed by default")
	assert.Equal(t, "2 Memories Used", item.ToggleLabel())

	collapsed := item.View(testOptions(), false)
	assert.Contains(t, collapsed, "2 Memories Used")
	assert.NotContains(t, collapsed, "user likes green tea")

	item.Toggle()
	assert.True(t, item.Expanded())
	expanded := item.View(testOptions(), false)
	assert.Contains(t, expanded, "Hide Memories")
	assert.Contains(t, expanded, "user likes green tea")
	assert.Contains(t, expanded, "Recalled 1,234 times")
	assert.Contains(t, expanded, "Relevance: 86.8%")
	assert.Contains(t, expanded, "Relevance: 50.0%")

	item.Toggle()
	assert.False(t, item.Expanded())

	assert.Equal(t, msg, item.Message(), "toggling never modifies the message")
}

func TestMessageItem_ViewUser(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)
	item := NewMessageItem(model.NewUserMessage("hello", at))

	view := item.View(testOptions(), false)
	assert.Contains(t, view, "you")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "09:30")
}

func TestMessageItem_ViewError(t *testing.T) {
	item := NewMessageItem(model.NewErrorMessage(time.Now()))

	view := item.View(testOptions(), false)
	assert.Contains(t, view, "[X] error")
	assert.Contains(t, view, "Sorry, there was an error")
	assert.NotContains(t, view, "Memories")
}

func TestMessageItem_ViewUnknownRole(t *testing.T) {
	item := NewMessageItem(model.Message{Role: "system", Content: "note", Timestamp: 1000})

	view := item.View(testOptions(), false)
	assert.Contains(t, view, "system")
	assert.Contains(t, view, "note")
}

func TestMessageItem_Selected(t *testing.T) {
	item := NewMessageItem(citedMessage())

	assert.NotContains(t, item.View(testOptions(), false), "> ")
	assert.Contains(t, item.View(testOptions(), true), "> + 2 Memories Used")
}

func TestMessageItem_WrapsToWidth(t *testing.T) {
	item := NewMessageItem(model.NewUserMessage(strings.Repeat("word ", 40), time.Now()))
	opts := testOptions()
	opts.Width = 30

	for _, line := range strings.Split(item.View(opts, false), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 30, "line %q", line)
	}
}

func TestMessageItem_Markdown(t *testing.T) {
	opts := testOptions()
	opts.Markdown = NewMarkdownRenderer("dark")

	item := NewMessageItem(model.NewAssistantMessage("some **bold** text", nil, time.Now()))
	view := item.View(opts, false)
	assert.Contains(t, view, "bold")
	assert.NotContains(t, view, "**")

	user := NewMessageItem(model.NewUserMessage("keep **stars**", time.Now()))
	assert.Contains(t, user.View(opts, false), "**stars**", "user content is never markdown-rendered")
}

func TestMarkdownRenderer_NilAndZeroWidth(t *testing.T) {
	var r *MarkdownRenderer
	assert.Equal(t, "# x", r.Render("# x", 40))
	assert.Equal(t, "# x", NewMarkdownRenderer("notty").Render("# x", 0))
}
