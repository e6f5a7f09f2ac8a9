// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the memchat command tree.
//
// Running memchat with no subcommand opens the full-screen chat. The other
// commands cover scripting and plain terminals:
//
//	memchat chat              line-based chat with slash commands
//	memchat ask <message...>  one message, one reply (--json)
//	memchat history           print the stored conversation (--json)
//	memchat status            check the backend
//	memchat config show|path|init
//	memchat version
//
// Global flags --config, --server and --verbose apply to every command.
package cli
