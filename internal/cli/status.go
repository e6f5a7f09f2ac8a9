// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// errBackendDown is returned by status after the failure has been printed.
var errBackendDown = errors.New("backend unreachable")

// StatusData is the --json output of the status command.
type StatusData struct {
	Server    string `json:"server"`
	Reachable bool   `json:"reachable"`
	Status    string `json:"status,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

func newStatusCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			start := time.Now()
			health, err := client.Health(cmd.Context())

			data := StatusData{
				Server:    client.BaseURL(),
				Reachable: err == nil,
				LatencyMS: time.Since(start).Milliseconds(),
			}
			if err != nil {
				data.Error = err.Error()
				a.logger.Warn("health check failed", "server", data.Server, "error", err)
			} else {
				data.Status = health.Status
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, data); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, renderStatus(data, isStyledWriter(out)))
			}

			if !data.Reachable {
				return errBackendDown
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func renderStatus(d StatusData, styled bool) string {
	var line string
	if d.Reachable {
		line = fmt.Sprintf("backend reachable at %s (%dms)", d.Server, d.LatencyMS)
		if d.Status != "" {
			line += ": " + d.Status
		}
	} else {
		line = fmt.Sprintf("backend unreachable at %s: %s", d.Server, d.Error)
	}

	if styled {
		return styles.RenderStatus(d.Reachable, line)
	}
	if d.Reachable {
		return styles.StatusIndicators.Success + " " + line
	}
	return styles.StatusIndicators.Error + " " + line
}
