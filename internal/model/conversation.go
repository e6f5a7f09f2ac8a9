// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the ordered message list shown to the user.
// Insertion order is chronological order; nothing reorders or deduplicates it.
type Conversation struct {
	messages []Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{
		messages: make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the conversation and returns the
// stored copy, which always carries an ID.
func (c *Conversation) Append(msg Message) Message {
	msg = msg.withID()
	c.messages = append(c.messages, msg)
	return msg
}

// Replace swaps the whole message list for msgs, keeping their order.
func (c *Conversation) Replace(msgs []Message) {
	replaced := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		replaced = append(replaced, msg.withID())
	}
	c.messages = replaced
}

// Clear removes all messages from the conversation.
func (c *Conversation) Clear() {
	c.messages = make([]Message, 0)
}

// Messages returns a copy of the message list.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastWithMemories returns the most recent message that carries citations.
func (c *Conversation) LastWithMemories() (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].HasMemories() {
			return c.messages[i], true
		}
	}
	return Message{}, false
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}
