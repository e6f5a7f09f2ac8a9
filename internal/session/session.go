// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/memchat-tui/internal/backend"
	"github.com/jeranaias/memchat-tui/internal/model"
)

// =============================================================================
// SESSION
// =============================================================================

// Session tracks the conversation shown to the user and the send affordances.
type Session struct {
	id        string
	startTime time.Time

	conv    *model.Conversation
	draft   string
	waiting bool

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used to stamp new messages.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		conv:   model.NewConversation(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startTime = s.now()
	s.logger = s.logger.With("component", "session", "session_id", s.id)
	return s
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns when the session was created.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// =============================================================================
// DRAFT
// =============================================================================

// Draft returns the current unsent input.
func (s *Session) Draft() string {
	return s.draft
}

// SetDraft replaces the unsent input.
func (s *Session) SetDraft(text string) {
	s.draft = text
}

// CanSend reports whether BeginSend would accept the current draft.
func (s *Session) CanSend() bool {
	return !s.waiting && strings.TrimSpace(s.draft) != ""
}

// =============================================================================
// SEND
// =============================================================================

// BeginSend captures and clears the draft, appends it as a user message and
// marks the session as waiting. It returns the captured text exactly as
// typed. A blank draft, or a send while waiting, changes nothing and
// returns ok=false.
func (s *Session) BeginSend() (text string, ok bool) {
	if !s.CanSend() {
		return "", false
	}

	text = s.draft
	s.draft = ""
	s.conv.Append(model.NewUserMessage(text, s.now()))
	s.waiting = true
	return text, true
}

// CompleteSend records the outcome of a send. A successful response becomes
// an assistant message with its citations. Any error becomes the fallback
// error message. Waiting is cleared either way.
func (s *Session) CompleteSend(resp *backend.ChatResponse, err error) model.Message {
	defer func() { s.waiting = false }()

	if err == nil && resp == nil {
		err = backend.ErrInvalidResponse
	}
	if err != nil {
		s.logger.Error("chat request failed", "error", err)
		return s.conv.Append(model.NewErrorMessage(s.now()))
	}

	s.logger.Debug("reply received", "count", len(resp.MemoriesUsed))
	return s.conv.Append(model.NewAssistantMessage(resp.Response, resp.MemoriesUsed, s.now()))
}

// Waiting reports whether a reply is outstanding.
func (s *Session) Waiting() bool {
	return s.waiting
}

// =============================================================================
// CONVERSATION
// =============================================================================

// ApplyHistory replaces the conversation with a fetched history. On error
// the failure is logged and the conversation is left as it was. It reports
// whether the conversation changed.
func (s *Session) ApplyHistory(history []model.Message, err error) bool {
	if err != nil {
		s.logger.Error("failed to load chat history", "error", err)
		return false
	}
	s.conv.Replace(history)
	s.logger.Debug("history loaded", "count", len(history))
	return true
}

// Clear empties the conversation. Outstanding requests are left alone; their
// replies append to the empty list.
func (s *Session) Clear() {
	s.conv.Clear()
}

// Messages returns a copy of the conversation in chronological order.
func (s *Session) Messages() []model.Message {
	return s.conv.Messages()
}

// Len returns the number of messages.
func (s *Session) Len() int {
	return s.conv.Len()
}

// LastWithMemories returns the most recent message carrying citations.
func (s *Session) LastWithMemories() (model.Message, bool) {
	return s.conv.LastWithMemories()
}
