/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package chat

// UserSource is the source recorded for the task message that opens a conversation.
const UserSource = "user"

// Message is one entry of a conversation.
type Message struct {
	// Source is the name of the role that produced the message, or UserSource.
	Source string `json:"source"`

	// Content is the message text.
	Content string `json:"content"`
}

// Transcript is the ordered record of a finished conversation.
type Transcript struct {
	Messages []Message `json:"messages"`

	// StopReason describes why the conversation ended.
	StopReason string `json:"stop_reason,omitempty"`
}

// Last returns the final message of the transcript.
func (t *Transcript) Last() (Message, bool) {
	if t == nil || len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

// Len returns the number of messages, counting the task message.
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Messages)
}
