/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaimodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"chainguard.dev/agenteval/agents/chat"
	"chainguard.dev/agenteval/agents/model/retry"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o",
  "choices": [{
    "index": 0,
    "message": {"role": "assistant", "content": "[{\"name\": \"accuracy\"}] TERMINATE"},
    "finish_reason": "stop"
  }],
  "usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
}`

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) chat.Client {
	t.Helper()
	oc := openai.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL+"/"),
		option.WithMaxRetries(0),
	)
	opts = append([]Option{WithRetryConfig(retry.Config{MaxRetries: 2, BaseBackoff: time.Millisecond, MaxBackoff: time.Millisecond})}, opts...)
	cl, err := New(oc, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return cl
}

func TestComplete(t *testing.T) {
	var body struct {
		Model       string        `json:"model"`
		Messages    []wireMessage `json:"messages"`
		Temperature *float64      `json:"temperature"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(b, &body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody)
	}))
	defer srv.Close()

	cl := newTestClient(t, srv, WithModel("gpt-4o-mini"), WithTemperature(0.2))
	resp, err := cl.Complete(context.Background(), &chat.Request{
		System: "be a critic",
		Turns: []chat.Turn{
			{Speaker: chat.User, Content: "task"},
			{Speaker: chat.Assistant, Content: "draft"},
		},
	})
	if err != nil {
		t.Fatalf("Complete() = %v", err)
	}

	want := &chat.Response{Content: `[{"name": "accuracy"}] TERMINATE`, InputTokens: 12, OutputTokens: 7}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}

	if body.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", body.Model)
	}
	wantMessages := []wireMessage{
		{Role: "system", Content: "be a critic"},
		{Role: "user", Content: "task"},
		{Role: "assistant", Content: "draft"},
	}
	if diff := cmp.Diff(wantMessages, body.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if body.Temperature == nil || *body.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", body.Temperature)
	}
}

func TestCompleteRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error": {"message": "slow down", "type": "rate_limit", "code": "rate_limit_exceeded"}}`)
			return
		}
		fmt.Fprint(w, completionBody)
	}))
	defer srv.Close()

	resp, err := newTestClient(t, srv).Complete(context.Background(), &chat.Request{
		Turns: []chat.Turn{{Speaker: chat.User, Content: "task"}},
	})
	if err != nil {
		t.Fatalf("Complete() = %v", err)
	}
	if resp.OutputTokens != 7 {
		t.Errorf("OutputTokens = %d, want 7", resp.OutputTokens)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server called %d times, want 2", n)
	}
}

func TestCompleteDoesNotRetryBadRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "bad model", "type": "invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Complete(context.Background(), &chat.Request{
		Turns: []chat.Turn{{Speaker: chat.User, Content: "task"}},
	})
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("Complete() = %v, wanted a 400 API error", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server called %d times, want 1", n)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "x", "object": "chat.completion", "created": 1, "model": "gpt-4o", "choices": []}`)
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv).Complete(context.Background(), &chat.Request{
		Turns: []chat.Turn{{Speaker: chat.User, Content: "task"}},
	}); err == nil {
		t.Error("Complete() with no choices should fail")
	}
}

func TestOptions(t *testing.T) {
	oc := openai.NewClient(option.WithAPIKey("k"))
	for name, opt := range map[string]Option{
		"empty model":      WithModel(""),
		"temperature":      WithTemperature(3),
		"max tokens":       WithMaxCompletionTokens(0),
		"bad retry config": WithRetryConfig(retry.Config{MaxBackoff: -1}),
	} {
		if _, err := New(oc, opt); err == nil {
			t.Errorf("%s: New() should reject the option", name)
		}
	}
}
