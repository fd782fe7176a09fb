/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googlemodel

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
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		c.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature.
// Gemini models support temperature values from 0.0 to 2.0
func WithTemperature(temperature float32) Option {
	return func(c *client) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		c.temperature = temperature
		return nil
	}
}

// WithMaxOutputTokens sets the maximum number of tokens to generate.
func WithMaxOutputTokens(tokens int32) Option {
	return func(c *client) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		c.maxOutputTokens = tokens
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
