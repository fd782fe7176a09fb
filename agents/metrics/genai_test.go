/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"chainguard.dev/agenteval/agents/metrics"
)

// With no meter provider installed the counters are no-ops; recording must
// still invoke the enricher and never panic.
func TestGenAIRecording(t *testing.T) {
	m := metrics.NewGenAI(metrics.MeterName)

	var calls int
	m.SetAttributeEnricher(func(_ context.Context, base []attribute.KeyValue) []attribute.KeyValue {
		calls++
		return append(base, attribute.String("task", "math"))
	})

	ctx := context.Background()
	m.RecordTokens(ctx, "claude-sonnet-4@20250514", 100, 20, attribute.Int("seed", 0))
	m.RecordRequest(ctx, "claude-sonnet-4@20250514", nil)
	m.RecordRequest(ctx, "claude-sonnet-4@20250514", errors.New("boom"))

	if calls != 3 {
		t.Errorf("enricher called %d times, want 3", calls)
	}
}
