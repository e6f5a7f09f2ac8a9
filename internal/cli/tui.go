// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/session"
	"github.com/jeranaias/memchat-tui/internal/ui/chat"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// runTUI starts the full-screen conversation view and blocks until it exits.
func (a *app) runTUI(cmd *cobra.Command) error {
	if !IsTTY() || !IsStdoutTTY() {
		return fmt.Errorf("the full-screen chat needs a terminal; try \"memchat chat\" or \"memchat ask\"")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sess := session.New(session.WithLogger(a.logger))
	m := chat.New(styles.NewTheme(), a.client(), sess, a.cfg.UI)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	a.watchConfig(ctx, p)

	a.logger.Info("tui started", "session", sess.ID(), "server", a.cfg.Server.URL)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	a.logger.Info("tui stopped", "session", sess.ID(), "messages", sess.Len())
	return nil
}

// watchConfig forwards UI settings from the config file into p whenever the
// file changes. Invalid edits are logged and ignored.
func (a *app) watchConfig(ctx context.Context, p *tea.Program) {
	path, err := config.Resolve(a.configPath)
	if err != nil {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	err = config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err != nil {
			return
		}
		p.Send(chat.ConfigReloadedMsg{UI: cfg.UI})
	})
	if err != nil {
		a.logger.Warn("config watch disabled", "path", path, "error", err)
	}
}
