/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package groupchat

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"

	"chainguard.dev/agenteval/agents/chat"
)

// Observer is notified of every message appended to a transcript.
type Observer interface {
	Observe(ctx context.Context, msg chat.Message) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, msg chat.Message) error

// Observe implements Observer.
func (f ObserverFunc) Observe(ctx context.Context, msg chat.Message) error {
	return f(ctx, msg)
}

// LogObserver logs each message through the context logger.
func LogObserver() Observer {
	return ObserverFunc(func(ctx context.Context, msg chat.Message) error {
		log := clog.FromContext(ctx).With("source", msg.Source).With("length", len(msg.Content))
		log.Info("Conversation message")
		log.With("content", msg.Content).Debug("Conversation message content")
		return nil
	})
}

// ConsoleObserver writes each message to w under a banner naming its source.
func ConsoleObserver(w io.Writer) Observer {
	var mu sync.Mutex
	return ObserverFunc(func(_ context.Context, msg chat.Message) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(w, "---------- %s ----------\n%s\n", msg.Source, msg.Content)
		return err
	})
}

// Observers fans each message out to every non-nil observer concurrently and
// returns once all of them have finished.
func Observers(observers ...Observer) Observer {
	return ObserverFunc(func(ctx context.Context, msg chat.Message) error {
		g, ctx := errgroup.WithContext(ctx)
		for _, o := range observers {
			if o != nil {
				g.Go(func() error {
					return o.Observe(ctx, msg)
				})
			}
		}
		return g.Wait()
	})
}
