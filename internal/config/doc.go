// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for memchat.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation, and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - ServerConfig: Backend URL and request timeout
//   - UIConfig: Title, timestamp layout, markdown, locale, mouse
//   - LoggingConfig: Log level, format and file
//   - Watcher: Reloads the file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (MEMCHAT_*)
//   - --config flag, or ~/.memchat/config.toml, or ~/.memchat/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := backend.NewClientWithConfig(&backend.ClientConfig{
//	    BaseURL: cfg.Server.URL,
//	    Timeout: cfg.Server.Timeout.Duration,
//	})
package config
