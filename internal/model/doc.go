// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types shared by the backend client,
// the session store and the UI: chat messages, the memory citations the
// backend attaches to assistant replies, and the ordered conversation.
//
// # Key Types
//
//   - Message: Single message with role, content, timestamp, optional memories and error flag
//   - MemoryCitation: Snippet the backend used for a reply, with recall and relevance metadata
//   - Timestamp: Epoch milliseconds with a tolerant JSON codec
//   - Conversation: Ordered, chronological list of messages
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.Append(model.NewUserMessage("Hello!", time.Now()))
//	for _, msg := range conv.Messages() {
//	    fmt.Println(msg.Role.DisplayName(), msg.Content)
//	}
package model
