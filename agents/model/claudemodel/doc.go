/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudemodel implements chat.Client on top of the Anthropic SDK.
//
// The client may talk to Claude through Vertex AI:
//
//	client := anthropic.NewClient(
//	    vertex.WithGoogleAuth(ctx, region, projectID),
//	)
//	model, err := claudemodel.New(client, claudemodel.WithModel("claude-sonnet-4@20250514"))
//
// or directly with an API key via option.WithAPIKey. Responses are streamed and
// accumulated. Rate limit, overload and gateway errors are retried with backoff.
package claudemodel
