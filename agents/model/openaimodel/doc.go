/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaimodel implements chat.Client on top of the OpenAI Go SDK.
// Any service speaking the chat completions API can be reached by pointing
// the SDK at it with option.WithBaseURL.
//
//	client := openai.NewClient(option.WithAPIKey(key))
//	model, err := openaimodel.New(client, openaimodel.WithModel("gpt-4o"))
package openaimodel
