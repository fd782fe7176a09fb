/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
)

// SeedFunc performs one independent run.
type SeedFunc[T any] func(ctx context.Context, seed int) (T, error)

// SeedResult is the outcome of one run performed by CollectSeeds.
type SeedResult[T any] struct {
	Index int
	Value T
	Err   error
}

// RunSeeds performs n runs of fn in index order and returns their values.
// The first failure aborts the remaining runs.
func RunSeeds[T any](ctx context.Context, n int, fn SeedFunc[T]) ([]T, error) {
	out := make([]T, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		v, err := fn(seedContext(ctx, i), i)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// CollectSeeds performs n runs of fn in index order and records every
// outcome. A failed run does not stop later ones. Once ctx is done the
// remaining runs are not attempted and carry the context error.
func CollectSeeds[T any](ctx context.Context, n int, fn SeedFunc[T]) []SeedResult[T] {
	out := make([]SeedResult[T], 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			out = append(out, SeedResult[T]{Index: i, Err: err})
			continue
		}
		v, err := fn(seedContext(ctx, i), i)
		if err != nil {
			clog.FromContext(ctx).With("seed", i).Warnf("Seed run failed: %v", err)
		}
		out = append(out, SeedResult[T]{Index: i, Value: v, Err: err})
	}
	return out
}

func seedContext(ctx context.Context, seed int) context.Context {
	return clog.WithLogger(ctx, clog.FromContext(ctx).With("seed", seed))
}
