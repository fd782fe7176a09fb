/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package groupchat

import (
	"fmt"
	"strings"

	"chainguard.dev/agenteval/agents/chat"
)

// Condition decides whether a conversation should stop. It is called with the
// full transcript after every appended message.
type Condition interface {
	// Check returns a non-empty reason when the conversation should stop.
	Check(messages []chat.Message) (reason string, stop bool)
}

// ConditionFunc adapts a function to the Condition interface.
type ConditionFunc func(messages []chat.Message) (string, bool)

// Check implements Condition.
func (f ConditionFunc) Check(messages []chat.Message) (string, bool) {
	return f(messages)
}

// TextMention stops once the latest message contains text.
func TextMention(text string) Condition {
	return ConditionFunc(func(messages []chat.Message) (string, bool) {
		if len(messages) == 0 {
			return "", false
		}
		if strings.Contains(messages[len(messages)-1].Content, text) {
			return fmt.Sprintf("Text %q mentioned", text), true
		}
		return "", false
	})
}

// MaxMessages stops once the transcript holds n messages, the task message included.
func MaxMessages(n int) Condition {
	return ConditionFunc(func(messages []chat.Message) (string, bool) {
		if len(messages) >= n {
			return fmt.Sprintf("Maximum number of messages %d reached, current message count: %d", n, len(messages)), true
		}
		return "", false
	})
}

// Or stops when any of conds stops, reporting the first reason.
func Or(conds ...Condition) Condition {
	return ConditionFunc(func(messages []chat.Message) (string, bool) {
		for _, c := range conds {
			if reason, stop := c.Check(messages); stop {
				return reason, true
			}
		}
		return "", false
	})
}
