// Package schema provides centralized JSON schema versioning for the
// structured error reports this interpreter emits. ValueV1 and StateV1
// are declared here but not attached to any output.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Schema version constants.
const (
	ErrorV1 = "galaxy.error/v1"
	ValueV1 = "galaxy.value/v1"
	StateV1 = "galaxy.state/v1"
)

// MarshalDeterministic marshals a value to JSON with sorted object keys so
// that identical inputs always produce byte-identical output.
func MarshalDeterministic(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("initial marshal failed: %w", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		// Not an object at the top level (e.g. an array or scalar); the
		// default encoding is already deterministic for those shapes.
		return data, nil
	}
	return marshalSorted(m)
}

// marshalSorted recursively marshals maps with sorted keys.
func marshalSorted(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		result := bytes.NewBufferString("{")
		for i, k := range keys {
			if i > 0 {
				result.WriteByte(',')
			}
			keyJSON, err := marshalSorted(k)
			if err != nil {
				return nil, err
			}
			valJSON, err := marshalSorted(val[k])
			if err != nil {
				return nil, err
			}
			result.Write(keyJSON)
			result.WriteByte(':')
			result.Write(valJSON)
		}
		result.WriteByte('}')
		return result.Bytes(), nil

	case []any:
		result := bytes.NewBufferString("[")
		for i, item := range val {
			if i > 0 {
				result.WriteByte(',')
			}
			itemJSON, err := marshalSorted(item)
			if err != nil {
				return nil, err
			}
			result.Write(itemJSON)
		}
		result.WriteByte(']')
		return result.Bytes(), nil

	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
}

// CompactMode controls whether FormatJSON emits compact or indented output.
var CompactMode = false

// SetCompactMode enables or disables compact JSON output.
func SetCompactMode(enabled bool) {
	CompactMode = enabled
}

// FormatJSON formats JSON according to the current compact mode setting.
func FormatJSON(data []byte) ([]byte, error) {
	if CompactMode {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
