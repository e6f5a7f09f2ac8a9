// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-based chat session for terminals where the full-screen
// view is unwanted (or unavailable).
//
// USABILITY: liner provides arrow-key history and line editing.
//
// Slash commands:
//   /clear     empty the local conversation
//   /history   fetch the stored conversation again
//   /memories  show the memories cited by the latest reply
//   /help      list commands
//   /quit      leave (Ctrl+D and Ctrl+C also work)

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/memchat-tui/internal/session"
	"github.com/jeranaias/memchat-tui/internal/ui/chat"
)

var errEmptyMessage = errors.New("message is empty")

const chatPrompt = "> "

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat in plain line mode",
		Long: `Chat without the full-screen view. Replies and their memories are
printed inline. Type /help for commands; Ctrl+D leaves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := liner.NewLiner()
			line.SetCtrlCAborts(true)

			sess := session.New(session.WithLogger(a.logger))
			c := NewChatCLI(line, a.client(), sess, newTranscript(cmd.OutOrStdout(), a.cfg.UI))
			defer c.Close()

			a.logger.Info("line chat started", "session", sess.ID(), "server", a.cfg.Server.URL)
			return c.Run(cmd.Context())
		},
	}
}

// =============================================================================
// CHAT CLI
// =============================================================================

// lineReader is the part of liner.State the chat loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// ChatCLI runs a line-based conversation against the backend.
// Input history lives in memory for the length of the session.
type ChatCLI struct {
	line   lineReader
	client chat.Backend
	sess   *session.Session
	out    *transcript
}

// NewChatCLI wires a line reader, backend and session together.
func NewChatCLI(line lineReader, client chat.Backend, sess *session.Session, out *transcript) *ChatCLI {
	return &ChatCLI{
		line:   line,
		client: client,
		sess:   sess,
		out:    out,
	}
}

// Close releases the terminal.
func (c *ChatCLI) Close() error {
	return c.line.Close()
}

// Run prints the stored conversation, then reads and handles lines until
// the user quits or input ends.
func (c *ChatCLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out.w, c.out.style(dimStyle, "Type a message, /help for commands, Ctrl+D to quit."))
	fmt.Fprintln(c.out.w)
	c.loadHistory(ctx, false)

	for {
		input, err := c.line.Prompt(chatPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out.w)
				c.printExitSummary()
				return nil
			}
			return err
		}

		if !c.Handle(ctx, input) {
			c.printExitSummary()
			return nil
		}
	}
}

// Handle processes one line of input. It reports whether the loop should
// keep going.
func (c *ChatCLI) Handle(ctx context.Context, input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return true
	}
	c.line.AppendHistory(input)

	if strings.HasPrefix(trimmed, "/") {
		return c.handleSlashCommand(ctx, trimmed)
	}

	c.send(ctx, input)
	return true
}

// send posts input verbatim and prints the reply, or the fallback bubble on
// failure.
func (c *ChatCLI) send(ctx context.Context, input string) {
	c.sess.SetDraft(input)
	text, ok := c.sess.BeginSend()
	if !ok {
		return
	}

	resp, err := c.client.Send(ctx, text)
	reply := c.sess.CompleteSend(resp, err)
	fmt.Fprintln(c.out.w)
	c.out.message(reply)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

func (c *ChatCLI) handleSlashCommand(ctx context.Context, input string) bool {
	name := strings.ToLower(strings.Fields(input)[0])

	switch name {
	case "/quit", "/exit", "/q":
		return false

	case "/clear":
		c.sess.Clear()
		fmt.Fprintln(c.out.w, c.out.style(dimStyle, "Conversation cleared."))

	case "/history":
		c.loadHistory(ctx, true)

	case "/memories":
		msg, ok := c.sess.LastWithMemories()
		if !ok {
			fmt.Fprintln(c.out.w, c.out.style(dimStyle, "No memories cited yet."))
			break
		}
		fmt.Fprintln(c.out.w, c.out.style(dimStyle, "Reply: "+msg.Preview(60)))
		c.out.memories(msg.Memories)

	case "/help", "/?":
		c.printHelp()

	default:
		fmt.Fprintf(c.out.w, "%s unknown command %s, type /help\n", c.out.style(errorStyle, "[X]"), name)
	}
	return true
}

// loadHistory replaces the session with the stored conversation and prints
// it. Failures are logged; they are reported only when the user asked.
func (c *ChatCLI) loadHistory(ctx context.Context, explicit bool) {
	history, err := c.client.History(ctx)
	if !c.sess.ApplyHistory(history, err) {
		if explicit {
			fmt.Fprintf(c.out.w, "%s could not load history\n", c.out.style(errorStyle, "[X]"))
		}
		return
	}
	if c.sess.Len() == 0 && !explicit {
		return
	}
	c.out.conversation(c.sess.Messages())
}

func (c *ChatCLI) printHelp() {
	lines := []string{
		"/clear     empty the conversation",
		"/history   reload the stored conversation",
		"/memories  show memories used by the latest reply",
		"/quit      leave (or Ctrl+D)",
	}
	for _, l := range lines {
		fmt.Fprintln(c.out.w, "  "+l)
	}
}

func (c *ChatCLI) printExitSummary() {
	fmt.Fprintln(c.out.w, c.out.style(dimStyle, fmt.Sprintf("%d messages this session. Bye.", c.sess.Len())))
}
