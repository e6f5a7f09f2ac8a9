// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the stored conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := a.client().History(cmd.Context())
			if err != nil {
				a.logger.Error("failed to load chat history", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, history)
			}
			newTranscript(out, a.cfg.UI).conversation(history)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded history as JSON")
	return cmd
}
