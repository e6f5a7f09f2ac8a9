// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jeranaias/memchat-tui/internal/backend"
	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/logging"
	"github.com/jeranaias/memchat-tui/internal/ui/styles"
)

// Version information, set by main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// skipSetup marks commands that run without loading config or logging.
const skipSetup = "memchat/skip-setup"

// app holds the state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	serverURL  string
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the memchat command tree. Without a subcommand it runs
// the full-screen chat.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "memchat",
		Short: "Terminal client for a memory-enhanced chat assistant",
		Long: `memchat talks to a memory-enhanced chat backend. The assistant answers
using memories it recalls, and each reply lists the memories it used.

Run without a subcommand for the full-screen chat, or use "memchat chat"
for a plain line-based session.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" || cmd.Name() == "help" {
				return nil
			}
			// Verbose logs would tear the alternate screen.
			var verbose io.Writer
			if a.verbose && cmd.Parent() != nil {
				verbose = cmd.ErrOrStderr()
			}
			return a.setup(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default ~/.memchat/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&a.serverURL, "server", "s", "", "backend URL, overrides config and MEMCHAT_SERVER_URL")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "also log to stderr")

	rootCmd.AddCommand(newChatCmd(a))
	rootCmd.AddCommand(newAskCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	a := &app{}
	return a.execute(newRootCmd(a))
}

// execute runs cmd and closes the log file afterwards, including when the
// command fails.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

// close flushes and closes the log file, if one was opened.
func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil && a.logger != nil {
		a.logger.Warn("close log", "error", err)
	}
	a.closeLog = nil
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// setup loads the effective configuration and starts logging. The --server
// flag beats the environment, which beats the file.
func (a *app) setup(stderr, verbose io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.serverURL != "" {
		cfg.Server.URL = a.serverURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --server: %w", err)
		}
	}
	a.cfg = cfg

	logger, closeLog, err := logging.Init(cfg.Logging, verbose)
	a.logger = logger
	a.closeLog = closeLog
	if err != nil {
		msg := fmt.Sprintf("logging disabled: %v", err)
		if isStyledWriter(stderr) {
			msg = styles.RenderWarning(msg)
		}
		fmt.Fprintln(stderr, msg)
	}
	logger.Debug("config loaded", "server", cfg.Server.URL, "timeout", cfg.Server.Timeout.String())
	return nil
}

// client returns a backend client for the effective configuration.
func (a *app) client() *backend.Client {
	return backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL: a.cfg.Server.URL,
		Timeout: a.cfg.Server.Timeout.Duration,
	})
}
