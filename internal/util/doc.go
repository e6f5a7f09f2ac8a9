// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for memchat.
//
// # Key Functions
//
// String Utilities (display-width aware, backed by go-runewidth):
//   - TruncateWidth: Cut a string to a column budget with an ellipsis
//   - StringWidth: Terminal column width of a string
//   - WordWrap: Wrap text on word boundaries to a column budget
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	line := util.TruncateWidth(content, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
