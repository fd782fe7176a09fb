/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result isolates how structured data is pulled out of free-form model text.

Models rarely answer with bare JSON. They wrap it in markdown fences, prefix it with
commentary, or append a TERMINATE marker after it. Every parser in this module goes
through one of the strategies here so that the extraction rule is explicit, testable,
and replaceable with stricter structured-output enforcement later.

# Strategies

ExtractJSON returns the body of the first ```json fenced block, or the trimmed input
with any surrounding fences removed:

	body := result.ExtractJSON("Sure:\n```json\n{\"a\": 1}\n```")
	// body == `{"a": 1}`

Brackets returns the inclusive substring between the first opening delimiter and the
last closing delimiter. Array and Object are shorthands for JSON arrays and objects:

	arr, err := result.Array(`Here you go: [{"name": "accuracy"}] TERMINATE`)
	// arr == `[{"name": "accuracy"}]`

Brackets fails with a *ParseError when no delimiter pair exists. It never returns an
empty string with a nil error, so a missing array cannot silently become an empty
criteria list.

# Errors

ParseError carries the failure Kind and the offending input. Use errors.As to detect
it through any amount of wrapping:

	var perr *result.ParseError
	if errors.As(err, &perr) {
		log.Printf("model output rejected (%s)", perr.Kind)
	}
*/
package result
