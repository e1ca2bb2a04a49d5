package codec

import (
	"bytes"
	"encoding/json"

	"github.com/jacentio/planar/shape"
)

// JSON is the structured codec: an array of flat integer-valued objects.
// The kind argument is ignored; objects are key-addressed, so column
// order does not apply.
type JSON struct{}

// Ext returns "json".
func (JSON) Ext() string { return "json" }

// Encode renders views as a JSON array. Nil and empty lists both encode
// to the literal text "[]".
func (JSON) Encode(_ shape.Kind, views []shape.AttrMap) ([]byte, error) {
	if len(views) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(views)
}

// Decode parses a JSON array of flat objects. Empty or whitespace-only
// input yields an empty list; anything else is parsed strictly, and
// malformed text returns a *ParseError.
func (JSON) Decode(_ shape.Kind, data []byte) ([]shape.AttrMap, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []shape.AttrMap{}, nil
	}
	var views []shape.AttrMap
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, &ParseError{Format: "json", Err: err}
	}
	return views, nil
}
