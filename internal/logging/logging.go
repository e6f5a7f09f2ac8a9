// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures slog for memchat.
//
// Logs go to a rotating file so they never interfere with the TUI. Line mode
// can additionally mirror them to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jeranaias/memchat-tui/internal/config"
)

const defaultLogFile = "memchat.log"

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures the default slog logger to write structured logs to a
// rotating file. When verbose is non-nil, a text handler on verbose is
// fanned out alongside the file handler.
//
// A file that cannot be created is not fatal: the returned logger still
// works (discarding, or verbose only) and the error is returned for the
// caller to report. The returned close function releases the file.
func Init(cfg config.LoggingConfig, verbose io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	noop := func() error { return nil }

	var handlers []slog.Handler
	if verbose != nil {
		handlers = append(handlers, slog.NewTextHandler(verbose, opts))
	}

	logPath := Path(cfg)
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		handlers = append(handlers, newHandler(cfg.Format, io.Discard, opts))
		logger := slog.New(fanout(handlers))
		slog.SetDefault(logger)
		return logger, noop, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}
	handlers = append(handlers, newHandler(cfg.Format, writer, opts))

	logger := slog.New(fanout(handlers))
	slog.SetDefault(logger)
	return logger, writer.Close, nil
}

// Path returns the log file Init writes to.
func Path(cfg config.LoggingConfig) string {
	if p := strings.TrimSpace(cfg.File); p != "" {
		return p
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return filepath.Join(".memchat", "logs", defaultLogFile)
	}
	return filepath.Join(dir, "logs", defaultLogFile)
}

// ParseLevel maps a config level name onto a slog level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}

func fanout(handlers []slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return slogmulti.Fanout(handlers...)
}
