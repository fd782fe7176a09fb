/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ExtractJSON extracts JSON content from a text response that may contain markdown code blocks.
// It looks for content between ```json and ``` markers, or returns the input trimmed if no markers are found.
func ExtractJSON(responseText string) string {
	var jsonBuffer bytes.Buffer
	inJSONBlock, foundJSON := false, false

	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !inJSONBlock {
			if line == "```json" {
				inJSONBlock, foundJSON = true, true
			}
			continue
		}
		if line == "```" {
			break
		}
		if jsonBuffer.Len() > 0 {
			jsonBuffer.WriteString("\n")
		}
		jsonBuffer.WriteString(line)
	}

	if foundJSON {
		// An empty block yields "", which callers surface as a decode error.
		return strings.TrimSpace(jsonBuffer.String())
	}

	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	return strings.TrimSpace(responseText)
}

// Brackets returns the substring of text from the first occurrence of open to the
// last occurrence of close, inclusive.
func Brackets(text string, open, close byte) (string, error) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", NewParseError(KindExtract, text, fmt.Errorf("no %q found", open))
	}
	end := strings.LastIndexByte(text, close)
	if end == -1 {
		return "", NewParseError(KindExtract, text, fmt.Errorf("no %q found", close))
	}
	if end < start {
		return "", NewParseError(KindExtract, text, fmt.Errorf("last %q precedes first %q", close, open))
	}
	return text[start : end+1], nil
}

// Array extracts the outermost JSON array candidate from text.
func Array(text string) (string, error) {
	return Brackets(text, '[', ']')
}

// Object extracts the outermost JSON object candidate from text.
func Object(text string) (string, error) {
	return Brackets(text, '{', '}')
}

// Extract extracts JSON content from a text response and unmarshals it into the provided type.
// It combines ExtractJSON with json.Unmarshal, reporting failures as *ParseError.
func Extract[T any](responseText string) (T, error) {
	var out T

	jsonContent := ExtractJSON(responseText)
	if jsonContent == "" {
		return out, NewParseError(KindExtract, responseText, errors.New("empty JSON content"))
	}
	if err := json.Unmarshal([]byte(jsonContent), &out); err != nil {
		return out, NewParseError(KindDecode, jsonContent, err)
	}
	return out, nil
}
