// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the memory-enhanced chat backend.
//
// The backend exposes two plain JSON endpoints and a health route:
//
//	GET  /api/chat/history   ordered array of messages
//	POST /api/chat           {"message": "..."} -> {"response": "...", "memories_used": [...]}
//	GET  /test               {"status": "..."}
//
// # Key Types
//
//   - Client: HTTP client for the backend, safe for concurrent use
//   - ClientConfig: Base URL and timeout
//   - ChatResponse: Reply text plus the memory citations used to produce it
//   - ClientError: Categorised failure (connection, timeout, HTTP status, bad body)
//
// # Usage
//
//	client := backend.NewClient()
//	history, err := client.History(ctx)
//	resp, err := client.Send(ctx, "hello")
//	if errors.Is(err, backend.ErrTimeout) {
//	    ...
//	}
//
// Every call makes exactly one HTTP request. The client never retries.
package backend
