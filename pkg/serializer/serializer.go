// Package serializer abstracts the wire-format conversion used by the
// Slack client: typed values to wire text and back. The default
// implementation is JSON; any format-symmetric implementation (same
// field-naming rules in both directions) can be substituted.
package serializer

import (
	"encoding/json"
	"fmt"
)

// Serializer converts values to and from the wire text format. Both
// directions must apply the same field-naming convention, so a value
// serialized and deserialized again carries the same field names.
type Serializer interface {
	// Serialize encodes v into wire text.
	Serialize(v any) ([]byte, error)

	// Deserialize decodes wire text into v, which must be a pointer to
	// the target type.
	Deserialize(data []byte, v any) error
}

// JSON is the default Serializer, backed by encoding/json. Field naming
// follows the struct's json tags in both directions.
type JSON struct{}

// NewJSON returns the default JSON serializer.
func NewJSON() *JSON { return &JSON{} }

// Serialize implements Serializer.
func (s *JSON) Serialize(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding to JSON: %w", err)
	}
	return data, nil
}

// Deserialize implements Serializer.
func (s *JSON) Deserialize(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding from JSON: %w", err)
	}
	return nil
}
