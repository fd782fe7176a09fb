/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"errors"
	"fmt"

	"chainguard.dev/agenteval/agents/groupchat"
)

// Defaults used when no option overrides them.
const (
	DefaultMaxRound = 2
	DefaultSeeds    = 10
)

// Config holds the settings shared by the evaluation operations.
type Config struct {
	// AdditionalInstructions are appended to the critic's system message.
	AdditionalInstructions string

	// MaxRound caps criteria conversations at this many messages, the task
	// message included.
	MaxRound int

	// UseSubCritic adds the sub-critic after the critic.
	UseSubCritic bool

	// Seeds is the number of independent runs of the multi-seed operations.
	Seeds int

	// Observer sees every conversation message. Nil means clog logging.
	Observer groupchat.Observer

	// Personas configures the participating roles.
	Personas Personas
}

// Option configures an evaluation operation.
type Option func(*Config) error

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxRound: DefaultMaxRound,
		Seeds:    DefaultSeeds,
		Personas: DefaultPersonas(),
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return cfg, nil
}

// WithAdditionalInstructions appends instructions to the critic's system message.
func WithAdditionalInstructions(instructions string) Option {
	return func(c *Config) error {
		c.AdditionalInstructions = instructions
		return nil
	}
}

// WithMaxRound sets the maximum number of messages in a criteria
// conversation, the task message included.
func WithMaxRound(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("max round must be at least 1, got %d", n)
		}
		c.MaxRound = n
		return nil
	}
}

// WithSubCritic enables or disables the sub-critic.
func WithSubCritic(enabled bool) Option {
	return func(c *Config) error {
		c.UseSubCritic = enabled
		return nil
	}
}

// WithSeeds sets the number of independent runs for the multi-seed operations.
func WithSeeds(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("seeds must be at least 1, got %d", n)
		}
		c.Seeds = n
		return nil
	}
}

// WithObserver sets the observer notified of every conversation message.
func WithObserver(o groupchat.Observer) Option {
	return func(c *Config) error {
		if o == nil {
			return errors.New("observer cannot be nil")
		}
		c.Observer = o
		return nil
	}
}

// WithPersonas replaces the role configurations.
func WithPersonas(p Personas) Option {
	return func(c *Config) error {
		c.Personas = p
		return nil
	}
}
