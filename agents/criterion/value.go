/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package criterion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which scalar a Value holds.
type ValueKind int

const (
	// KindString is a free-form ordinal label such as "Excellent".
	KindString ValueKind = iota
	// KindInt is an integral JSON number that fits in an int64. Larger
	// integers are held as KindFloat and lose precision. JSON booleans are
	// read as 1 and 0.
	KindInt
	// KindFloat is a JSON number with a fraction or exponent.
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a scalar judgment: a string, an integer or a float.
// The zero Value is the empty string.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind returns the scalar kind held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNumeric reports whether v holds an Int or a Float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Float64 returns the numeric value of v. ok is false for strings.
func (v Value) Float64() (f float64, ok bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the string held by v. ok is false for numbers.
func (v Value) Text() (s string, ok bool) {
	return v.s, v.kind == KindString
}

// Equal reports whether v and o denote the same scalar. Numbers compare by
// numeric value regardless of Int or Float; a string never equals a number.
func (v Value) Equal(o Value) bool {
	if v.kind == KindString || o.kind == KindString {
		return v.kind == o.kind && v.s == o.s
	}
	if v.kind == KindInt && o.kind == KindInt {
		return v.i == o.i
	}
	a, _ := v.Float64()
	b, _ := o.Float64()
	return a == b
}

// String renders v for humans: strings unquoted, numbers in their shortest form.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("unsupported float value %v", v.f)
		}
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return []byte(s), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.s); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Strings and numbers are
// accepted, and booleans become Int(1) or Int(0).
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		parsed, err := parseNumber(string(data))
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = boolValue(b)
		return nil
	default:
		return fmt.Errorf("value must be a string or a number, got %s", data)
	}
}

// ValueOf converts a decoded JSON token into a Value.
func ValueOf(tok any) (Value, error) {
	switch t := tok.(type) {
	case string:
		return String(t), nil
	case json.Number:
		return parseNumber(t.String())
	case float64:
		return Float(t), nil
	case bool:
		return boolValue(t), nil
	default:
		return Value{}, fmt.Errorf("value must be a string or a number, got %T", tok)
	}
}

func boolValue(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float(f), nil
}
