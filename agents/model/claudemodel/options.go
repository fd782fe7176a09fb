/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudemodel

import (
	"fmt"
	"strings"

	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/retry"
)

// Option is a functional option for configuring the client
type Option func(*client) error

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *client) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		c.model = model
		return nil
	}
}

// WithMaxTokens sets the maximum tokens for responses
func WithMaxTokens(tokens int64) Option {
	return func(c *client) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		if tokens > 32000 {
			return fmt.Errorf("max tokens %d exceeds maximum of 32000", tokens)
		}
		c.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature, between 0.0 and 1.0.
func WithTemperature(temp float64) Option {
	return func(c *client) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		c.temperature = temp
		return nil
	}
}

// WithRetryConfig sets the retry configuration for transient API errors.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *client) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.retry = cfg
		return nil
	}
}

// WithAttributeEnricher adds contextual attributes to recorded metrics.
func WithAttributeEnricher(enricher metrics.AttributeEnricher) Option {
	return func(c *client) error {
		c.metrics.SetAttributeEnricher(enricher)
		return nil
	}
}
