/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports structural problems that Parse tolerates: duplicate names
// within one list and criteria without accepted values. All problems found are
// joined into the returned error.
func Validate(criteria []Criterion) error {
	return errors.Join(validate(nil, criteria)...)
}

func validate(path []string, criteria []Criterion) []error {
	var errs []error
	seen := make(map[string]struct{}, len(criteria))
	for _, c := range criteria {
		here := append(path[:len(path):len(path)], c.Name)
		if _, dup := seen[c.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate criterion name", strings.Join(here, "/")))
		}
		seen[c.Name] = struct{}{}

		if len(c.AcceptedValues) == 0 {
			errs = append(errs, fmt.Errorf("%s: no accepted values", strings.Join(here, "/")))
		}
		errs = append(errs, validate(here, c.SubCriteria)...)
	}
	return errs
}
