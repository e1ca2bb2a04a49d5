package codec

import "github.com/jacentio/planar/shape"

// Codec converts a list of dictionary views to and from a text
// representation. Implementations are stateless and safe for concurrent
// use.
type Codec interface {
	// Ext returns the file extension for the format, without the dot.
	Ext() string

	// Encode renders views as text. A nil or empty list encodes to the
	// format's empty representation, never to nil output.
	Encode(kind shape.Kind, views []shape.AttrMap) ([]byte, error)

	// Decode parses text back into dictionary views. Empty input yields
	// an empty list.
	Decode(kind shape.Kind, data []byte) ([]shape.AttrMap, error)
}
