// ABOUTME: NumericString type for free-text numeric fields (reps, weight, age).
// ABOUTME: Accepts a JSON string or number and always encodes as a string.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumericString holds a number as the user typed it. Older clients wrote
// these fields as JSON numbers, newer ones as strings; both decode to the
// same value and the raw number text is kept verbatim.
type NumericString string

// UnmarshalJSON accepts "82.5", 82.5 and null.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric field must be a string or number, got %s", data)
	}
	*n = NumericString(num.String())
	return nil
}

// String returns the raw text.
func (n NumericString) String() string {
	return string(n)
}

// IsEmpty reports whether the field holds only whitespace.
func (n NumericString) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Float parses the value. ok is false for empty or non-numeric text.
func (n NumericString) Float() (float64, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses the leading integer the way the app's set counter does:
// "4" and "4.0" both give 4.
func (n NumericString) Int() (int, bool) {
	f, ok := n.Float()
	if !ok {
		return 0, false
	}
	return int(f), true
}
