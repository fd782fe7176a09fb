/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googlemodel implements chat.Client on top of the Google Gen AI SDK.
//
//	client, err := genai.NewClient(ctx, &genai.ClientConfig{
//	    Project:  projectID,
//	    Location: region,
//	    Backend:  genai.BackendVertexAI,
//	})
//	model, err := googlemodel.New(client, googlemodel.WithModel("gemini-2.5-flash"))
//
// Quota exhaustion, rate limit and transient server errors are retried with backoff.
package googlemodel
