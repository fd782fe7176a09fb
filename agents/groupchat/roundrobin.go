/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package groupchat

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"chainguard.dev/agenteval/agents/chat"
)

// ErrMaxTurns is returned when a conversation exceeds the turn cap set with
// WithMaxTurns before its condition fires.
var ErrMaxTurns = errors.New("conversation exceeded its maximum number of turns")

// Option configures a RoundRobin.
type Option func(*RoundRobin) error

// WithObserver sets the observer notified of every message. The default logs
// through clog.
func WithObserver(o Observer) Option {
	return func(g *RoundRobin) error {
		if o == nil {
			return errors.New("observer cannot be nil")
		}
		g.observer = o
		return nil
	}
}

// WithMaxTurns caps the number of participant turns regardless of the
// condition. Zero means no cap.
func WithMaxTurns(n int) Option {
	return func(g *RoundRobin) error {
		if n < 0 {
			return fmt.Errorf("max turns cannot be negative, got %d", n)
		}
		g.maxTurns = n
		return nil
	}
}

// RoundRobin is a conversation in which participants speak in a fixed cycle.
// It holds no per-run state and may be run repeatedly.
type RoundRobin struct {
	participants []*chat.Role
	condition    Condition
	observer     Observer
	maxTurns     int
}

// New creates a round-robin conversation among participants that ends when
// cond fires.
func New(participants []*chat.Role, cond Condition, opts ...Option) (*RoundRobin, error) {
	if len(participants) == 0 {
		return nil, errors.New("at least one participant is required")
	}
	if cond == nil {
		return nil, errors.New("termination condition cannot be nil")
	}
	names := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if p == nil {
			return nil, errors.New("participant cannot be nil")
		}
		if _, dup := names[p.Name()]; dup {
			return nil, fmt.Errorf("duplicate participant name %q", p.Name())
		}
		names[p.Name()] = struct{}{}
	}

	g := &RoundRobin{
		participants: participants,
		condition:    cond,
		observer:     LogObserver(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return g, nil
}

// Run plays the conversation seeded with task and returns the transcript.
func (g *RoundRobin) Run(ctx context.Context, task string) (transcript *chat.Transcript, err error) {
	tr := otel.Tracer("chainguard.dev/agenteval/groupchat",
		oteltrace.WithInstrumentationVersion("1.0.0"))
	ctx, span := tr.Start(ctx, "groupchat.run", oteltrace.WithAttributes(
		attribute.Int("groupchat.participants", len(g.participants)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.Int("groupchat.messages", transcript.Len()),
				attribute.String("groupchat.stop_reason", transcript.StopReason),
			)
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	log := clog.FromContext(ctx)
	transcript = &chat.Transcript{}

	// appendMessage records msg and reports whether the conversation is over.
	appendMessage := func(msg chat.Message) (bool, error) {
		transcript.Messages = append(transcript.Messages, msg)
		if err := g.observer.Observe(ctx, msg); err != nil {
			return false, fmt.Errorf("observing message from %s: %w", msg.Source, err)
		}
		if reason, stop := g.condition.Check(transcript.Messages); stop {
			transcript.StopReason = reason
			return true, nil
		}
		return false, nil
	}

	done, err := appendMessage(chat.Message{Source: chat.UserSource, Content: task})
	if err != nil {
		return nil, err
	}

	for turn := 0; !done; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.maxTurns > 0 && turn >= g.maxTurns {
			return nil, fmt.Errorf("%w (%d)", ErrMaxTurns, g.maxTurns)
		}

		speaker := g.participants[turn%len(g.participants)]
		msg, err := g.speak(ctx, tr, speaker, turn, transcript.Messages)
		if err != nil {
			return nil, err
		}
		if done, err = appendMessage(msg); err != nil {
			return nil, err
		}
	}

	log.With("messages", transcript.Len()).
		With("stop_reason", transcript.StopReason).
		Info("Conversation finished")
	return transcript, nil
}

func (g *RoundRobin) speak(ctx context.Context, tr oteltrace.Tracer, speaker *chat.Role, turn int, history []chat.Message) (chat.Message, error) {
	ctx, span := tr.Start(ctx, "groupchat.turn", oteltrace.WithAttributes(
		attribute.String("groupchat.speaker", speaker.Name()),
		attribute.Int("groupchat.turn", turn),
	))
	defer span.End()

	msg, err := speaker.Respond(ctx, history)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return chat.Message{}, fmt.Errorf("turn %d: %w", turn, err)
	}
	span.SetStatus(codes.Ok, "")
	return msg, nil
}
