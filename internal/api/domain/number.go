package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a JSON field that accepts either a number or a numeric string,
// mirroring the loose coercion the HTTP API has always allowed
// ({"quantity": 3} and {"quantity": "3"} are both fine).
//
// It tracks two things validation cares about separately: whether the field
// carried a usable (non-null, non-empty, non-zero) value at all, and whether
// that value parsed as a number. A zero number counts as absent, so required
// checks fire before range checks ever see it.
type Number struct {
	value   float64
	present bool
	valid   bool
}

// NewNumber builds a present, valid Number. Mostly for tests.
func NewNumber(v float64) Number {
	return Number{value: v, present: v != 0, valid: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		n.present = true
		s = strings.TrimSpace(s)
		if s == "" {
			// Whitespace-only strings coerce to zero, so they reach the
			// range checks rather than the required check.
			n.valid = true
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			n.value = v
			n.valid = true
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		// Booleans, objects, arrays: present but not a number, so the
		// numeric validation message fires instead of a decode error.
		n.present = true
		return nil
	}
	n.value = v
	n.valid = true
	n.present = v != 0
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// Present reports whether the field carried a usable value.
func (n Number) Present() bool { return n.present }

// Valid reports whether the carried value parsed as a number.
func (n Number) Valid() bool { return n.valid }

// Float64 returns the parsed value, zero when absent or unparseable.
func (n Number) Float64() float64 { return n.value }
