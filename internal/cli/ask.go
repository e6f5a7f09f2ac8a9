// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/memchat-tui/internal/model"
)

func newAskCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <message...>",
		Short: "Send one message and print the reply",
		Long: `Send one message to the assistant and print its reply together with
the memories it used. The words are joined with single spaces.

Examples:
  memchat ask "What did I say about the trip?"
  memchat ask --json what is my favourite color`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return errEmptyMessage
			}

			resp, err := a.client().Send(cmd.Context(), text)
			if err != nil {
				a.logger.Error("chat request failed", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, resp)
			}
			reply := model.NewAssistantMessage(resp.Response, resp.MemoriesUsed, time.Now())
			newTranscript(out, a.cfg.UI).message(reply)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded response as JSON")
	return cmd
}
