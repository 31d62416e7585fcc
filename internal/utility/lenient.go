package utility

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

/* =================================================================================
							LENIENT JSON VALUES
	Clients send whatever their UI state holds: numbers as strings, nulls,
	booleans where numbers belong. None of these types ever fail to decode;
	anything unusable becomes the zero value.
=================================================================================*/

// MaxListLen caps how many elements a lenient list keeps.
const MaxListLen = 256

func firstByte(data []byte) byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// Number is a non-negative float. Numeric strings are parsed; negatives,
// NaN, Inf and non-numeric input become 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0

	var raw string
	switch firstByte(data) {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(bytes.TrimSpace(data))
	default:
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

// Flag is a boolean that also accepts "true", "1", "yes" and non-zero numbers.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = false

	switch firstByte(data) {
	case 't':
		*f = true
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "yes", "on":
			*f = true
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
		*f = Flag(err == nil && v != 0)
	}
	return nil
}

func (f Flag) Bool() bool { return bool(f) }

// Text is a string that also accepts numbers (kept in their JSON spelling)
// and booleans. Objects, arrays and null become "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""

	switch b := firstByte(data); {
	case b == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*t = Text(s)
	case b == 't' || b == 'f' || b == '-' || (b >= '0' && b <= '9'):
		*t = Text(bytes.TrimSpace(data))
	}
	return nil
}

func (t Text) String() string { return string(t) }

// TextList is a list of Text. A non-array becomes nil; empty elements are
// dropped and at most MaxListLen are kept.
type TextList []string

func (l *TextList) UnmarshalJSON(data []byte) error {
	*l = nil
	if firstByte(data) != '[' {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	out := make([]string, 0, min(len(items), MaxListLen))
	for _, item := range items {
		if len(out) == MaxListLen {
			break
		}
		var t Text
		_ = t.UnmarshalJSON(item)
		if t != "" {
			out = append(out, string(t))
		}
	}
	*l = out
	return nil
}

// Object decodes T only when the value is a JSON object; anything else
// leaves the zero T in place.
type Object[T any] struct {
	Value T
	Set   bool
}

func (o *Object[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.Value, o.Set = zero, false
	if firstByte(data) != '{' {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	o.Value, o.Set = v, true
	return nil
}

// List decodes an array of objects, skipping elements that are not objects.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = nil
	if firstByte(data) != '[' {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	out := make([]T, 0, min(len(items), MaxListLen))
	for _, item := range items {
		if len(out) == MaxListLen {
			break
		}
		var o Object[T]
		_ = o.UnmarshalJSON(item)
		if o.Set {
			out = append(out, o.Value)
		}
	}
	*l = out
	return nil
}
