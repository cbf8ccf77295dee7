package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric form value that arrives either as a JSON number or as
// a string ("500", " 12.5 "). Empty strings and null decode as absent;
// strings that do not parse are kept as Invalid so validation can reject them.
type Number struct {
	Value   float64
	Set     bool
	Invalid bool
}

// MaxQuantity is the largest piece count a quote may carry.
const MaxQuantity = math.MaxInt32

// NewNumber returns a present Number.
func NewNumber(v float64) Number { return Number{Value: v, Set: true} }

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Invalid = true
			return nil
		}
		n.Value, n.Set = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		n.Invalid = true
		return nil
	}
	n.Value, n.Set = v, true
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value or nil when absent.
func (n Number) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// String renders the value the way it is shown in emails.
func (n Number) String() string {
	if !n.Set {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Count returns the value as a piece count. ok is false unless the value is
// a whole number between 1 and MaxQuantity.
func (n Number) Count() (count int, ok bool) {
	if !n.Set || n.Invalid || n.Value < 1 || n.Value > MaxQuantity || n.Value != math.Trunc(n.Value) {
		return 0, false
	}
	return int(n.Value), true
}
