/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
)

// PostProcessor rewrites raw model output before it becomes a message.
type PostProcessor func(content string) (string, error)

// RoleConfig describes a conversation participant.
type RoleConfig struct {
	// Name identifies the role in transcripts; it must be unique within a conversation.
	Name string

	// Description says what the role does.
	Description string

	// SystemMessage is sent as the system instruction on every turn.
	SystemMessage string

	// PostProcess is optional.
	PostProcess PostProcessor
}

// Role is a persona bound to a Client.
type Role struct {
	config RoleConfig
	client Client
}

// NewRole binds config to client.
func NewRole(client Client, config RoleConfig) (*Role, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if strings.TrimSpace(config.Name) == "" {
		return nil, errors.New("role name cannot be empty")
	}
	if config.Name == UserSource {
		return nil, fmt.Errorf("role name %q is reserved for the task message", UserSource)
	}
	return &Role{config: config, client: client}, nil
}

// Name returns the role name.
func (r *Role) Name() string { return r.config.Name }

// Description returns the role description.
func (r *Role) Description() string { return r.config.Description }

// SystemMessage returns the system instruction the role sends.
func (r *Role) SystemMessage() string { return r.config.SystemMessage }

// Request renders history from the role's point of view.
func (r *Role) Request(history []Message) *Request {
	req := &Request{
		System: r.config.SystemMessage,
		Turns:  make([]Turn, 0, len(history)),
	}
	for _, m := range history {
		speaker := User
		if m.Source == r.config.Name {
			speaker = Assistant
		}
		if n := len(req.Turns); n > 0 && req.Turns[n-1].Speaker == speaker {
			req.Turns[n-1].Content += "\n" + m.Content
			continue
		}
		req.Turns = append(req.Turns, Turn{Speaker: speaker, Content: m.Content})
	}
	return req
}

// Respond asks the model for the role's next message given the conversation so far.
func (r *Role) Respond(ctx context.Context, history []Message) (Message, error) {
	log := clog.FromContext(ctx).With("role", r.config.Name)

	resp, err := r.client.Complete(ctx, r.Request(history))
	if err != nil {
		return Message{}, fmt.Errorf("%s: completing: %w", r.config.Name, err)
	}
	if resp == nil {
		return Message{}, fmt.Errorf("%s: client returned no response", r.config.Name)
	}

	content := resp.Content
	if r.config.PostProcess != nil {
		if content, err = r.config.PostProcess(content); err != nil {
			return Message{}, fmt.Errorf("%s: post-processing: %w", r.config.Name, err)
		}
	}

	log.With("history", len(history)).
		With("response_length", len(content)).
		With("input_tokens", resp.InputTokens).
		With("output_tokens", resp.OutputTokens).
		Debug("Role responded")

	return Message{Source: r.config.Name, Content: content}, nil
}
