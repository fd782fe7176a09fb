/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package groupchat runs bounded round-robin conversations between chat roles.
//
// A conversation opens with the task as a message from chat.UserSource. The
// participants then speak in order, cycling, each seeing the whole transcript.
// After every appended message, the task message included, the termination
// Condition is consulted; the first condition to fire ends the run.
//
//	team, err := groupchat.New([]*chat.Role{critic, subcritic},
//		groupchat.Or(groupchat.TextMention("TERMINATE"), groupchat.MaxMessages(4)),
//		groupchat.WithObserver(groupchat.ConsoleObserver(os.Stdout)))
//	transcript, err := team.Run(ctx, task.SystemMessage())
//
// Observers see every message as it is appended. Observers combines several of
// them; each message is fully observed before the next turn begins.
package groupchat
