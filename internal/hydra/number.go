package hydra

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceNumber normalizes a quantity or monetary value that the backend may
// emit as a native number or as a decimal string (DECIMAL columns serialized
// as strings). Numbers pass through, parsable non-empty strings are parsed,
// and everything else yields fallback. The result is always finite.
func CoerceNumber(v any, fallback float64) float64 {
	if n, ok := coerce(v); ok {
		return n
	}
	return fallback
}

// CoerceOptionalNumber is CoerceNumber for fields where zero and "not set"
// must stay distinguishable (reorder points, safety stock). Absent, empty or
// unparsable values yield nil.
func CoerceOptionalNumber(v any) *float64 {
	if n, ok := coerce(v); ok {
		return &n
	}
	return nil
}

func coerce(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return coerce(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		return coerce(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Number is a JSON field that accepts a number or a numeric string and never
// fails to unmarshal; anything unparsable decodes as zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(CoerceNumber(decodeScalar(data), 0))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Float64 returns the plain value.
func (n Number) Float64() float64 { return float64(n) }

// OptionalNumber is a JSON field that accepts a number or a numeric string
// and decodes absent/empty/unparsable values as nil rather than zero.
type OptionalNumber struct {
	value *float64
}

func (o *OptionalNumber) UnmarshalJSON(data []byte) error {
	o.value = CoerceOptionalNumber(decodeScalar(data))
	return nil
}

func (o OptionalNumber) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// Ptr returns the value or nil when the field was absent or unparsable.
func (o OptionalNumber) Ptr() *float64 { return o.value }

// Or returns the value, or fallback when unset.
func (o OptionalNumber) Or(fallback float64) float64 {
	if o.value == nil {
		return fallback
	}
	return *o.value
}

// IsSet reports whether the field carried a usable value.
func (o OptionalNumber) IsSet() bool { return o.value != nil }

// OptionalOf wraps a plain float for constructing fixtures and placeholders.
func OptionalOf(f float64) OptionalNumber {
	return OptionalNumber{value: &f}
}

// decodeScalar decodes a JSON scalar loosely; invalid JSON degrades to nil
// so the coercion fallback applies.
func decodeScalar(data []byte) any {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return v
}
