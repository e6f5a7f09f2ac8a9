// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FallbackErrorText is the assistant content shown when a send fails.
const FallbackErrorText = "Sorry, there was an error processing your message."

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// Label returns the short lowercase tag rendered above a bubble.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "you"
	case RoleAssistant:
		return "assistant"
	case "":
		return "unknown"
	default:
		return string(r)
	}
}

// =============================================================================
// MEMORY CITATION
// =============================================================================

// MemoryCitation is a snippet the backend reports having used for a reply.
// Supplied entirely by the backend; fields beyond these three are ignored.
type MemoryCitation struct {
	Content     string  `json:"content"`
	RecallCount int     `json:"recall_count"`
	Relevance   float64 `json:"relevance"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
// Messages are values and are never mutated once appended.
type Message struct {
	// ID is a client-side render key. It is never sent to or read from the backend.
	ID string `json:"-"`

	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`

	Memories []MemoryCitation `json:"memories,omitempty"`
	IsError  bool             `json:"isError,omitempty"`
}

// NewUserMessage creates a user message stamped with at.
func NewUserMessage(content string, at time.Time) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: TimestampFromTime(at),
	}
}

// NewAssistantMessage creates an assistant reply carrying the citations the
// backend returned with it.
func NewAssistantMessage(content string, memories []MemoryCitation, at time.Time) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: TimestampFromTime(at),
		Memories:  memories,
	}
}

// NewErrorMessage creates the assistant bubble that replaces a failed reply.
func NewErrorMessage(at time.Time) Message {
	return Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Content:   FallbackErrorText,
		Timestamp: TimestampFromTime(at),
		IsError:   true,
	}
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// HasMemories reports whether the message carries at least one citation.
func (m Message) HasMemories() bool {
	return len(m.Memories) > 0
}

// IsUser reports whether the message was written by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// withID returns a copy of m that is guaranteed to carry a render key.
func (m Message) withID() Message {
	if m.ID == "" {
		m.ID = generateID()
	}
	return m
}

// generateID creates a unique message ID.
func generateID() string {
	return "msg_" + uuid.NewString()
}
