/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// binding produces the text substituted for one placeholder.
type binding interface {
	render() (string, error)
}

type unbound string

func (u unbound) render() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", string(u))
}

type literal string

func (l literal) render() (string, error) {
	return string(l), nil
}

type jsonValue struct{ data any }

func (j jsonValue) render() (string, error) {
	b, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(b), nil
}

type yamlValue struct{ data any }

func (y yamlValue) render() (string, error) {
	b, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
