/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder assembles agent system messages from templates with
{{placeholder}} bindings.

Templates must be string literals. Placeholders are filled in a single pass, so
text substituted for one placeholder is never scanned for further placeholders.
Structured data is rendered through encoding/json or gopkg.in/yaml.v3 rather
than spliced in by hand.

	var critic = promptbuilder.MustNewPrompt(`Answer with a list shaped like:
	{{example}}
	Say {{token}} when you are done.`)

	text, err := critic.
		MustBindJSON("example", []criterion.Criterion{sample}).
		MustBindStringLiteral("token", "TERMINATE").
		Build()

Every Bind method returns a new Prompt and leaves its receiver untouched, so a
package-level template can be shared between goroutines and bound per use.
Binding a placeholder twice, binding a name the template does not contain, and
building with unbound placeholders are all errors.
*/
package promptbuilder
