// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the memory-enhanced chat backend.
package backend

import "github.com/jeranaias/memchat-tui/internal/model"

// =============================================================================
// ENDPOINTS
// =============================================================================

const (
	PathHistory = "/api/chat/history"
	PathChat    = "/api/chat"
	PathHealth  = "/test"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Response     string                 `json:"response"`
	MemoriesUsed []model.MemoryCitation `json:"memories_used"`
}

// HealthResponse is the body of GET /test.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body the backend sends with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
