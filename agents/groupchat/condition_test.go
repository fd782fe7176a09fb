/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package groupchat

import (
	"testing"

	"chainguard.dev/agenteval/agents/chat"
)

func msgs(contents ...string) []chat.Message {
	out := make([]chat.Message, 0, len(contents))
	for _, c := range contents {
		out = append(out, chat.Message{Source: "critic", Content: c})
	}
	return out
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name     string
		cond     Condition
		messages []chat.Message
		want     bool
	}{
		{name: "mention in last", cond: TextMention("TERMINATE"), messages: msgs("a", "done TERMINATE"), want: true},
		{name: "mention only earlier", cond: TextMention("TERMINATE"), messages: msgs("TERMINATE", "more"), want: false},
		{name: "mention is case sensitive", cond: TextMention("TERMINATE"), messages: msgs("terminate"), want: false},
		{name: "mention on empty", cond: TextMention("TERMINATE"), messages: nil, want: false},
		{name: "below max", cond: MaxMessages(3), messages: msgs("a", "b"), want: false},
		{name: "at max", cond: MaxMessages(2), messages: msgs("a", "b"), want: true},
		{name: "or first", cond: Or(TextMention("X"), MaxMessages(10)), messages: msgs("X"), want: true},
		{name: "or second", cond: Or(TextMention("X"), MaxMessages(1)), messages: msgs("a"), want: true},
		{name: "or none", cond: Or(TextMention("X"), MaxMessages(5)), messages: msgs("a"), want: false},
		{name: "empty or", cond: Or(), messages: msgs("a"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, got := tt.cond.Check(tt.messages)
			if got != tt.want {
				t.Fatalf("Check() = %v, want %v", got, tt.want)
			}
			if got && reason == "" {
				t.Error("a firing condition must give a reason")
			}
		})
	}
}
