/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

// ToNumeric maps a judgment onto a comparable number.
//
// Numeric judgments, and judgments against a criterion whose accepted values
// are all numeric, are returned unchanged. Otherwise the accepted values are
// weighted linearly from 1 (first) down to 0 (last) and the weight of v is
// returned. A judgment that is not accepted scores 0.
func (c Criterion) ToNumeric(v Value) Value {
	if v.IsNumeric() || c.allNumeric() {
		return v
	}

	l := float64(len(c.AcceptedValues))
	increment := 1.0
	if len(c.AcceptedValues) > 1 {
		increment = l / (l - 1)
	}

	// Later duplicates overwrite earlier ones.
	weight, found := 0.0, false
	for i, accepted := range c.AcceptedValues {
		if accepted.Equal(v) {
			weight, found = (l-float64(i)*increment)/l, true
		}
	}
	if !found {
		return Float(0)
	}
	return Float(weight)
}

func (c Criterion) allNumeric() bool {
	for _, v := range c.AcceptedValues {
		if !v.IsNumeric() {
			return false
		}
	}
	return true
}
