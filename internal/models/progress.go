// ABOUTME: ProgressEntry model for body weight and measurement check-ins.
// ABOUTME: Measurements are an open set of optional fields flattened into the entry JSON.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"sort"
)

// progressCoreFields are the keys that are not measurements.
var progressCoreFields = map[string]bool{
	"id": true, "date": true, "timestamp": true, "weight": true, "photoUri": true,
}

// IsProgressCoreField reports whether key is one of the fixed entry fields.
func IsProgressCoreField(key string) bool {
	return progressCoreFields[key]
}

// ProgressEntry is one body check-in. Entries are append-only; they can be
// deleted but not edited.
type ProgressEntry struct {
	ID        string        `yaml:"id"`
	Date      string        `yaml:"date"`
	Timestamp int64         `yaml:"timestamp"`
	Weight    NumericString `yaml:"weight"`
	PhotoURI  string        `yaml:"photo_uri,omitempty"`

	// Measurements holds only the fields that were present when the entry was
	// written. A nil map means no measurements.
	Measurements map[string]NumericString `yaml:"measurements,omitempty"`

	// Extra keeps non-numeric fields written by other app versions, such as
	// a photos list, verbatim so they survive a rewrite.
	Extra map[string]json.RawMessage `yaml:"-"`
}

// Clone returns a deep copy of the entry.
func (e ProgressEntry) Clone() ProgressEntry {
	out := e
	if e.Measurements != nil {
		out.Measurements = maps.Clone(e.Measurements)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// Measurement returns a measurement and whether it was recorded.
func (e ProgressEntry) Measurement(key string) (NumericString, bool) {
	v, ok := e.Measurements[key]
	return v, ok
}

// MeasurementKeys returns the recorded measurement keys, sorted.
func (e ProgressEntry) MeasurementKeys() []string {
	keys := make([]string, 0, len(e.Measurements))
	for k := range e.Measurements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON writes the flat shape used by the app:
// {"id":..,"date":..,"timestamp":..,"weight":..,"neck":..,"photoUri":..}.
func (e ProgressEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Measurements)+len(e.Extra)+5)
	for k, v := range e.Extra {
		if IsProgressCoreField(k) {
			continue
		}
		out[k] = v
	}
	for k, v := range e.Measurements {
		if IsProgressCoreField(k) {
			continue
		}
		out[k] = string(v)
	}
	out["id"] = e.ID
	out["date"] = e.Date
	out["timestamp"] = e.Timestamp
	out["weight"] = string(e.Weight)
	if e.PhotoURI != "" {
		out["photoUri"] = e.PhotoURI
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat shape. Every key that is not a core field
// becomes a measurement, or lands in Extra when it is not a number or text.
func (e *ProgressEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out ProgressEntry
	out.Measurements, out.Extra = SplitProgressFields(raw)
	for key, val := range raw {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(val, &out.ID)
		case "date":
			err = json.Unmarshal(val, &out.Date)
		case "timestamp":
			out.Timestamp, err = decodeMillis(val)
		case "weight":
			err = json.Unmarshal(val, &out.Weight)
		case "photoUri":
			err = json.Unmarshal(val, &out.PhotoURI)
		}
		if err != nil {
			return fmt.Errorf("progress entry field %q: %w", key, err)
		}
	}

	*e = out
	return nil
}

// SplitProgressFields sorts the non-core keys of a flat entry into numeric
// measurements and raw extras. Either map is nil when empty.
func SplitProgressFields(raw map[string]json.RawMessage) (map[string]NumericString, map[string]json.RawMessage) {
	var measurements map[string]NumericString
	var extra map[string]json.RawMessage
	for key, val := range raw {
		if IsProgressCoreField(key) {
			continue
		}
		var m NumericString
		if err := json.Unmarshal(val, &m); err == nil {
			if measurements == nil {
				measurements = make(map[string]NumericString)
			}
			measurements[key] = m
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, val); err != nil {
			extra[key] = append(json.RawMessage(nil), val...)
			continue
		}
		extra[key] = buf.Bytes()
	}
	return measurements, extra
}

// decodeMillis reads an epoch-millis timestamp written either as an integer
// or as a float (JavaScript numbers). null reads as zero.
func decodeMillis(data json.RawMessage) (int64, error) {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return 0, nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return 0, err
	}
	if i, err := num.Int64(); err == nil {
		return i, nil
	}
	f, err := num.Float64()
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
