// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TIMESTAMP TESTS
// =============================================================================

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Timestamp
	}{
		{"integer millis", "1000", 1000},
		{"large integer millis", "1700000000123", 1700000000123},
		{"fractional seconds", "1700000000.5", 1700000000500},
		{"fractional millis", "1700000000123.4", 1700000000123},
		{"null", "null", 0},
		{"zero", "0", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.Equal(t, tc.want, ts)
		})
	}
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	for _, raw := range []string{
		`"yesterday"`,
		`1e30`,
		`-1e30`,
		`99999999999999999999`,
	} {
		ts := Timestamp(7)
		assert.Error(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.Equal(t, Timestamp(7), ts, raw)
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Timestamp(1234))
	require.NoError(t, err)
	assert.Equal(t, "1234", string(data))
}

func TestTimestamp_Time(t *testing.T) {
	at := time.Date(2025, 3, 4, 15, 6, 0, 0, time.UTC)
	ts := TimestampFromTime(at)
	assert.True(t, ts.Time().Equal(at))
	assert.False(t, ts.IsZero())
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_DecodeHistoryEntry(t *testing.T) {
	input := `{"role":"assistant","content":"hi","timestamp":1000,
		"memories":[{"id":3,"content":"likes tea","recall_count":2,"relevance":0.5,"vector":[0.1]}]}`

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(input), &msg))

	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, Timestamp(1000), msg.Timestamp)
	require.Len(t, msg.Memories, 1)
	assert.Equal(t, MemoryCitation{Content: "likes tea", RecallCount: 2, Relevance: 0.5}, msg.Memories[0])
	assert.False(t, msg.IsError)
	assert.Empty(t, msg.ID)
}

func TestMessage_EncodeOmitsLocalFields(t *testing.T) {
	msg := NewUserMessage("hello", time.UnixMilli(42))
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, `{"role":"user","content":"hello","timestamp":42}`, out)
	assert.NotContains(t, out, msg.ID)
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage(time.Now())
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, FallbackErrorText, msg.Content)
	assert.True(t, msg.IsError)
	assert.False(t, msg.HasMemories())
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "you", RoleUser.Label())
	assert.Equal(t, "assistant", RoleAssistant.Label())
	assert.Equal(t, "system", Role("system").Label())
	assert.Equal(t, "unknown", Role("").Label())
}

func TestMessage_Preview(t *testing.T) {
	msg := Message{Content: strings.Repeat("é", 20)}
	assert.Equal(t, strings.Repeat("é", 7)+"...", msg.Preview(10))
	assert.Equal(t, msg.Content, msg.Preview(20))
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendKeepsOrder(t *testing.T) {
	conv := NewConversation()
	now := time.Now()

	conv.Append(NewUserMessage("one", now))
	conv.Append(NewAssistantMessage("two", nil, now))
	conv.Append(NewUserMessage("three", now))

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{msgs[0].Content, msgs[1].Content, msgs[2].Content})
}

func TestConversation_ReplaceAssignsIDs(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("stale", time.Now()))

	conv.Replace([]Message{{Role: RoleUser, Content: "hi", Timestamp: 1000}})

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.NotEmpty(t, msgs[0].ID)
}

func TestConversation_Clear(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("a", time.Now()))
	conv.Clear()

	assert.Equal(t, 0, conv.Len())
	assert.Empty(t, conv.Messages())
}

func TestConversation_MessagesIsCopy(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("original", time.Now()))

	msgs := conv.Messages()
	msgs[0].Content = "changed"

	assert.Equal(t, "original", conv.Messages()[0].Content)
}

func TestConversation_LastWithMemories(t *testing.T) {
	conv := NewConversation()
	now := time.Now()
	conv.Append(NewAssistantMessage("with", []MemoryCitation{{Content: "m"}}, now))
	conv.Append(NewAssistantMessage("without", nil, now))

	msg, ok := conv.LastWithMemories()
	require.True(t, ok)
	assert.Equal(t, "with", msg.Content)
}
