// ABOUTME: Serialization boundary for the progress.measurements_json column.
// ABOUTME: Only measurements that were present are written, and only those are read back.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/models"
)

// EncodeMeasurements renders measurements and any extra fields for the
// measurements_json column. Core entry fields are never written into the blob.
func EncodeMeasurements(m map[string]models.NumericString, extra map[string]json.RawMessage) (string, error) {
	out := make(map[string]any, len(m)+len(extra))
	for k, v := range extra {
		if models.IsProgressCoreField(k) {
			continue
		}
		out[k] = v
	}
	for k, v := range m {
		if models.IsProgressCoreField(k) {
			continue
		}
		out[k] = string(v)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode measurements: %w", err)
	}
	return string(data), nil
}

// DecodeMeasurements parses a measurements_json value into measurements and
// extras. An empty column or an empty object decodes to nil maps. Numbers
// written by older versions are kept as their text.
func DecodeMeasurements(s string) (map[string]models.NumericString, map[string]json.RawMessage, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, nil, fmt.Errorf("decode measurements: %w", err)
	}
	m, extra := models.SplitProgressFields(raw)
	return m, extra, nil
}
