/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package chat defines the pieces shared by every agent conversation: the
messages that make up a transcript, the Client port through which a model is
asked for a completion, and the Role that turns a persona into a participant.

# Client

A Client answers one Request with one Response. Provider adapters live under
agents/model; tests substitute a ClientFunc:

	client := chat.ClientFunc(func(ctx context.Context, req *chat.Request) (*chat.Response, error) {
		return &chat.Response{Content: `[{"name": "accuracy", ...}] TERMINATE`}, nil
	})

# Roles

A Role pairs a RoleConfig with a Client. When asked to respond, it renders the
transcript from its own point of view: its earlier messages become assistant
turns and everything else becomes user turns. Consecutive turns from the same
side are merged because several providers reject them.

	critic, err := chat.NewRole(client, chat.RoleConfig{
		Name:          "critic",
		SystemMessage: "You suggest criteria for evaluating tasks.",
	})
	msg, err := critic.Respond(ctx, transcript.Messages)

PostProcess, when set, rewrites the raw model output before it is recorded, for
example to strip a markdown fence.
*/
package chat
