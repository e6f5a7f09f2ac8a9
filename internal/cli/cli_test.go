// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/memchat-tui/internal/backend"
	"github.com/jeranaias/memchat-tui/internal/config"
	"github.com/jeranaias/memchat-tui/internal/model"
	"github.com/jeranaias/memchat-tui/internal/session"
)

// =============================================================================
// TEST BACKEND
// =============================================================================

type testBackend struct {
	mu       sync.Mutex
	history  []model.Message
	reply    backend.ChatResponse
	fail     bool
	received []string
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(backend.PathHistory, func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.fail {
			http.Error(w, `{"error":"database locked"}`, http.StatusInternalServerError)
			return
		}
		history := b.history
		if history == nil {
			history = []model.Message{}
		}
		json.NewEncoder(w).Encode(history)
	})
	mux.HandleFunc(backend.PathChat, func(w http.ResponseWriter, r *http.Request) {
		var req backend.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.received = append(b.received, req.Message)
		if b.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(backend.ErrorResponse{Error: "model offline"})
			return
		}
		json.NewEncoder(w).Encode(b.reply)
	})
	mux.HandleFunc(backend.PathHealth, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(backend.HealthResponse{Status: "Server is running"})
	})
	return mux
}

func (b *testBackend) messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.received...)
}

func newTestBackend(t *testing.T) (*testBackend, *httptest.Server) {
	t.Helper()
	b := &testBackend{
		reply: backend.ChatResponse{
			Response: "hi there",
			MemoriesUsed: []model.MemoryCitation{
				{Content: "likes green tea", RecallCount: 1234, Relevance: 0.8675},
			},
		},
	}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return b, srv
}

// runCLI executes the command tree with an isolated home directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runApp(t, args...)
	return out, err
}

// runApp is runCLI that also returns the invocation state.
func runApp(t *testing.T, args ...string) (string, *app, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"MEMCHAT_SERVER_URL", "MEMCHAT_TIMEOUT", "MEMCHAT_LOG_LEVEL", "MEMCHAT_LOG_FILE", "MEMCHAT_MARKDOWN"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := a.execute(cmd)
	return out.String(), a, err
}

// =============================================================================
// ASK
// =============================================================================

func TestAsk_PrintsReplyAndMemories(t *testing.T) {
	b, srv := newTestBackend(t)

	out, err := runCLI(t, "--server", srv.URL, "ask", "what", "do", "I", "drink?")
	require.NoError(t, err)

	assert.Equal(t, []string{"what do I drink?"}, b.messages())
	assert.Contains(t, out, "Assistant")
	assert.Contains(t, out, "hi there")
	assert.Contains(t, out, "1 Memories Used:")
	assert.Contains(t, out, "likes green tea")
	assert.Contains(t, out, "Recalled 1,234 times")
	assert.Contains(t, out, "Relevance: 86.8%")
	assert.NotContains(t, out, "\x1b[", "output to a buffer must be plain")
}

func TestAsk_JSON(t *testing.T) {
	b, srv := newTestBackend(t)

	out, err := runCLI(t, "--server", srv.URL, "ask", "--json", "hello")
	require.NoError(t, err)

	var got backend.ChatResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, b.reply, got)
}

func TestAsk_NoMemories(t *testing.T) {
	b, srv := newTestBackend(t)
	b.reply = backend.ChatResponse{Response: "plain answer", MemoriesUsed: []model.MemoryCitation{}}

	out, err := runCLI(t, "--server", srv.URL, "ask", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "plain answer")
	assert.NotContains(t, out, "Memories Used")
}

func TestAsk_ServerError(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true

	_, err := runCLI(t, "--server", srv.URL, "ask", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrBadStatus), "got %v", err)
}

func TestAsk_Unreachable(t *testing.T) {
	_, srv := newTestBackend(t)
	url := srv.URL
	srv.Close()

	_, err := runCLI(t, "--server", url, "ask", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrUnreachable), "got %v", err)
}

func TestAsk_RequiresMessage(t *testing.T) {
	_, srv := newTestBackend(t)

	_, err := runCLI(t, "--server", srv.URL, "ask")
	assert.Error(t, err)

	_, err = runCLI(t, "--server", srv.URL, "ask", "  ")
	assert.ErrorIs(t, err, errEmptyMessage)
}

func TestExecute_ClosesLogWhenCommandFails(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true

	_, a, err := runApp(t, "--server", srv.URL, "ask", "hello")
	require.Error(t, err)
	require.NotNil(t, a.logger, "setup should have run")
	assert.Nil(t, a.closeLog, "log file left open")

	a.close()
}

// =============================================================================
// HISTORY
// =============================================================================

func TestHistory_PrintsConversation(t *testing.T) {
	b, srv := newTestBackend(t)
	b.history = []model.Message{
		{Role: model.RoleUser, Content: "hi", Timestamp: 1000},
		{Role: model.RoleAssistant, Content: "hello again", Timestamp: 2000,
			Memories: []model.MemoryCitation{{Content: "met before", RecallCount: 2, Relevance: 0.5}}},
	}

	out, err := runCLI(t, "--server", srv.URL, "history")
	require.NoError(t, err)

	youAt := strings.Index(out, "You")
	hiAt := strings.Index(out, "hello again")
	require.True(t, youAt >= 0 && hiAt > youAt, "messages out of order:\n%s", out)
	assert.Contains(t, out, "met before")
	assert.Contains(t, out, "Relevance: 50.0%")
}

func TestHistory_Empty(t *testing.T) {
	_, srv := newTestBackend(t)

	out, err := runCLI(t, "--server", srv.URL, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No messages yet.")
}

func TestHistory_JSON(t *testing.T) {
	b, srv := newTestBackend(t)
	b.history = []model.Message{{Role: model.RoleUser, Content: "hi", Timestamp: 1000}}

	out, err := runCLI(t, "--server", srv.URL, "history", "--json")
	require.NoError(t, err)

	var got []model.Message
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Content)
	assert.Equal(t, model.Timestamp(1000), got[0].Timestamp)
}

func TestHistory_Failure(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true

	_, err := runCLI(t, "--server", srv.URL, "history")
	assert.True(t, errors.Is(err, backend.ErrBadStatus), "got %v", err)
}

// =============================================================================
// STATUS
// =============================================================================

func TestStatus_Reachable(t *testing.T) {
	_, srv := newTestBackend(t)

	out, err := runCLI(t, "--server", srv.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] backend reachable at "+srv.URL)
	assert.Contains(t, out, "Server is running")
}

func TestStatus_Unreachable(t *testing.T) {
	_, srv := newTestBackend(t)
	url := srv.URL
	srv.Close()

	out, err := runCLI(t, "--server", url, "status")
	assert.ErrorIs(t, err, errBackendDown)
	assert.Contains(t, out, "[X] backend unreachable at "+url)
}

func TestStatus_JSON(t *testing.T) {
	_, srv := newTestBackend(t)

	out, err := runCLI(t, "--server", srv.URL, "status", "--json")
	require.NoError(t, err)

	var got StatusData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Reachable)
	assert.Equal(t, srv.URL, got.Server)
	assert.Equal(t, "Server is running", got.Status)
}

// =============================================================================
// CONFIG / VERSION / FLAGS
// =============================================================================

func TestConfigInitShowPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memchat.toml")

	out, err := runCLI(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = runCLI(t, "--config", path, "config", "init")
	assert.Error(t, err, "init must not overwrite without --force")

	_, err = runCLI(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = runCLI(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = runCLI(t, "--config", path, "--server", "http://example.test:9000", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `url = "http://example.test:9000"`)
	assert.Contains(t, out, `timeout = "30s"`)
}

func TestConfigShow_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.UI.Title = "Remembering Bot"
	require.NoError(t, config.Save(cfg, path))

	out, err := runCLI(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `title = "Remembering Bot"`)
}

func TestInvalidServerFlag(t *testing.T) {
	_, err := runCLI(t, "--server", "ftp://nowhere", "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.url")
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "history")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "memchat "+Version)
}

func TestVerboseLogsToStderr(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true

	out, err := runCLI(t, "--verbose", "--server", srv.URL, "ask", "hello")
	require.Error(t, err)
	assert.Contains(t, out, "chat request failed")
}

// =============================================================================
// LINE MODE
// =============================================================================

type fakeLine struct {
	inputs  []string
	history []string
	closed  bool
}

func (f *fakeLine) Prompt(string) (string, error) {
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in, nil
}

func (f *fakeLine) AppendHistory(item string) {
	f.history = append(f.history, item)
}

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func newTestChat(t *testing.T, srv *httptest.Server, inputs ...string) (*ChatCLI, *fakeLine, *bytes.Buffer) {
	t.Helper()
	line := &fakeLine{inputs: inputs}
	var out bytes.Buffer
	client := backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: srv.URL})
	c := NewChatCLI(line, client, session.New(), newTranscript(&out, config.Default().UI))
	return c, line, &out
}

func TestChatCLI_SendAndMemories(t *testing.T) {
	b, srv := newTestBackend(t)
	c, line, out := newTestChat(t, srv, "  hello  ", "/memories", "/quit", "never read")

	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, []string{"  hello  "}, b.messages(), "text is sent verbatim")
	assert.Equal(t, []string{"never read"}, line.inputs, "loop stops at /quit")
	assert.Equal(t, []string{"  hello  ", "/memories", "/quit"}, line.history)

	msgs := c.sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "hi there", msgs[1].Content)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "likes green tea"), "once with the reply, once for /memories")
	assert.Contains(t, text, "2 messages this session")
}

func TestChatCLI_SendFailureShowsFallback(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true
	c, _, out := newTestChat(t, srv, "hello")

	require.NoError(t, c.Run(context.Background()))

	msgs := c.sess.Messages()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].IsError)
	assert.Equal(t, model.FallbackErrorText, msgs[1].Content)
	assert.Contains(t, out.String(), model.FallbackErrorText)
	assert.NotContains(t, out.String(), "model offline", "backend error text is never shown")
	assert.False(t, c.sess.Waiting())
}

func TestChatCLI_LoadsHistoryOnStart(t *testing.T) {
	b, srv := newTestBackend(t)
	b.history = []model.Message{{Role: model.RoleUser, Content: "earlier question", Timestamp: 1000}}
	c, _, out := newTestChat(t, srv)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "earlier question")
	assert.Equal(t, 1, c.sess.Len())
}

func TestChatCLI_HistoryFailureOnStartIsSilent(t *testing.T) {
	b, srv := newTestBackend(t)
	b.fail = true
	c, _, out := newTestChat(t, srv)

	require.NoError(t, c.Run(context.Background()))
	assert.NotContains(t, out.String(), "could not load history")
	assert.Equal(t, 0, c.sess.Len())
}

func TestChatCLI_SlashCommands(t *testing.T) {
	b, srv := newTestBackend(t)
	c, _, out := newTestChat(t, srv)
	ctx := context.Background()

	assert.True(t, c.Handle(ctx, "   "))
	assert.Empty(t, b.messages(), "blank input is not sent")

	assert.True(t, c.Handle(ctx, "/memories"))
	assert.Contains(t, out.String(), "No memories cited yet.")

	assert.True(t, c.Handle(ctx, "hello"))
	assert.Equal(t, 2, c.sess.Len())

	assert.True(t, c.Handle(ctx, "/clear"))
	assert.Equal(t, 0, c.sess.Len())

	b.history = []model.Message{{Role: model.RoleAssistant, Content: "from server", Timestamp: 5}}
	assert.True(t, c.Handle(ctx, "/history"))
	require.Equal(t, 1, c.sess.Len())
	assert.Equal(t, "from server", c.sess.Messages()[0].Content)

	b.fail = true
	assert.True(t, c.Handle(ctx, "/history"))
	assert.Contains(t, out.String(), "could not load history")
	assert.Equal(t, 1, c.sess.Len(), "failed reload keeps the conversation")

	assert.True(t, c.Handle(ctx, "/bogus"))
	assert.Contains(t, out.String(), "unknown command /bogus")

	assert.True(t, c.Handle(ctx, "/help"))
	assert.Contains(t, out.String(), "/memories")

	assert.False(t, c.Handle(ctx, "/QUIT"))
}

func TestChatCLI_Close(t *testing.T) {
	_, srv := newTestBackend(t)
	c, line, _ := newTestChat(t, srv)

	require.NoError(t, c.Close())
	assert.True(t, line.closed)
}
