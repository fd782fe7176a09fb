/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package chat

import "context"

// Speaker is the provider-level side of a turn.
type Speaker string

const (
	User      Speaker = "user"
	Assistant Speaker = "assistant"
)

// Turn is one provider-level message.
type Turn struct {
	Speaker Speaker
	Content string
}

// Request asks a model for the next assistant turn.
type Request struct {
	// System is the system instruction; it may be empty.
	System string

	// Turns is the conversation so far, oldest first.
	Turns []Turn
}

// Response is a single completion.
type Response struct {
	Content      string
	InputTokens  int64
	OutputTokens int64
}

// Client produces completions. Implementations must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, req *Request) (*Response, error)

// Complete implements Client.
func (f ClientFunc) Complete(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// ContinuePrompt is the user turn appended by Request.EndingWithUser.
const ContinuePrompt = "Continue."

// EndingWithUser returns the turns of r, followed by a ContinuePrompt user
// turn when the last turn is the assistant's. Providers that treat a trailing
// assistant turn as a prefill use it so a role speaking twice in a row
// answers afresh.
func (r *Request) EndingWithUser() []Turn {
	if n := len(r.Turns); n > 0 && r.Turns[n-1].Speaker == Assistant {
		return append(r.Turns[:n:n], Turn{Speaker: User, Content: ContinuePrompt})
	}
	return r.Turns
}
