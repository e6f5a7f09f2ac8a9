// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the memory-enhanced chat backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jeranaias/memchat-tui/internal/model"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int // HTTP status for ErrTypeHTTPStatus, otherwise 0
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches any ClientError of the same category, so errors.Is works
// against the sentinels below.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	return ok && t.Type == e.Type
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeHTTPStatus
	ErrTypeInvalidResponse
)

// String returns a short name for the category.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConnection:
		return "connection"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeHTTPStatus:
		return "http_status"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Sentinel errors for easy checking.
var (
	ErrUnreachable     = &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable"}
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrBadStatus       = &ClientError{Type: ErrTypeHTTPStatus, Message: "backend returned an error status"}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "invalid response from backend"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is where the reference backend listens.
const DefaultBaseURL = "http://localhost:5001"

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend root, without a trailing slash (default: http://localhost:5001)
	BaseURL string

	// Timeout bounds each request end to end (default: 30s)
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests. Timeout is ignored when set.
	HTTPClient *http.Client
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the chat backend.
// The Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// CHAT OPERATIONS
// =============================================================================

// History fetches the stored conversation in chronological order.
func (c *Client) History(ctx context.Context) ([]model.Message, error) {
	var history []model.Message
	if err := c.do(ctx, http.MethodGet, PathHistory, nil, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []model.Message{}
	}
	return history, nil
}

// Send posts one user message and returns the assistant reply.
// The text is sent verbatim.
func (c *Client) Send(ctx context.Context, message string) (*ChatResponse, error) {
	var result ChatResponse
	if err := c.do(ctx, http.MethodPost, PathChat, ChatRequest{Message: message}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health queries the backend's status route.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// do performs exactly one request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxBodyBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, limited)
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// classifyTransportError maps a failed round trip onto the error taxonomy.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	return &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable", Cause: err}
}

// statusError builds the error for a non-2xx reply, preferring the
// backend's own {"error": ...} text when it sent one.
func statusError(resp *http.Response, body io.Reader) error {
	msg := "request failed: " + resp.Status

	var apiErr ErrorResponse
	if err := json.NewDecoder(body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		msg = fmt.Sprintf("%s (%d)", apiErr.Error, resp.StatusCode)
	}

	return &ClientError{
		Type:    ErrTypeHTTPStatus,
		Message: msg,
		Status:  resp.StatusCode,
	}
}
