/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenteval

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Task describes the work being evaluated. Its system message opens every
// criteria conversation and prefixes every quantification request.
type Task interface {
	SystemMessage() string
}

// BasicTask is a task described by a name, a description and one successful
// and one failed example response.
type BasicTask struct {
	Name               string `json:"name" yaml:"name"`
	Description        string `json:"description" yaml:"description"`
	SuccessfulResponse string `json:"successful_response" yaml:"successful_response"`
	FailedResponse     string `json:"failed_response" yaml:"failed_response"`
}

var _ Task = BasicTask{}

// SystemMessage implements Task.
func (t BasicTask) SystemMessage() string {
	return fmt.Sprintf("Task: %s.\nTask description: %s\nTask successful example: %s\nTask failed example: %s\n",
		t.Name, t.Description, t.SuccessfulResponse, t.FailedResponse)
}

// ParseTask decodes a BasicTask from YAML or JSON. Unknown fields are rejected
// and a name is required.
func ParseTask(data []byte) (*BasicTask, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t BasicTask
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding task: %w", err)
	}
	if t.Name == "" {
		return nil, errors.New("task name is required")
	}
	return &t, nil
}
