// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one chat: the conversation, the draft
// input and whether a reply is outstanding.
//
// A Session performs no I/O. Front ends (the TUI and line mode) run the
// backend calls themselves and feed the results back in, so every state
// transition happens on the caller's loop.
//
// # Key Types
//
//   - Session: conversation, draft and waiting flag with their transitions
//
// # Usage
//
//	s := session.New()
//	s.SetDraft("hello")
//	text, ok := s.BeginSend()
//	if ok {
//	    resp, err := client.Send(ctx, text)
//	    s.CompleteSend(resp, err)
//	}
//
// A Session is not safe for concurrent use.
package session
