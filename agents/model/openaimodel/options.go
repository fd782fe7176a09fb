/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaimodel

import (
	"errors"
	"fmt"

	"chainguard.dev/agenteval/agents/metrics"
	"chainguard.dev/agenteval/agents/model/retry"
)

// Option is a functional option for configuring the client
type Option func(*client) error

// WithModel overrides the model name. Any name is accepted because
// compatible services use their own naming.
func WithModel(model string) Option {
	return func(c *client) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		c.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature, between 0.0 and 2.0. When
// unset the service default applies, which reasoning models require.
func WithTemperature(temp float64) Option {
	return func(c *client) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		c.temperature = &temp
		return nil
	}
}

// WithMaxCompletionTokens bounds the generated tokens, reasoning included.
func WithMaxCompletionTokens(tokens int64) Option {
	return func(c *client) error {
		if tokens <= 0 {
			return fmt.Errorf("max completion tokens must be positive, got %d", tokens)
		}
		c.maxTokens = tokens
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
