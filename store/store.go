package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jacentio/planar/codec"
	"github.com/jacentio/planar/shape"
)

// Store persists one shape collection per kind as a flat file.
type Store struct {
	config Config
	codec  codec.Codec
	ids    *shape.Allocator
}

// New creates a Store writing files in the configured directory with the
// given codec. Shapes reconstructed by Load draw placeholder ids from
// ids before their stored id is applied.
func New(config Config, c codec.Codec, ids *shape.Allocator) *Store {
	config.validate()
	if ids == nil {
		ids = shape.NewAllocator()
	}
	return &Store{
		config: config,
		codec:  c,
		ids:    ids,
	}
}

// Path returns the file a kind's collection is stored in.
func (s *Store) Path(kind shape.Kind) string {
	return filepath.Join(s.config.Dir, string(kind)+"."+s.codec.Ext())
}

// Save writes the collection's encoding to the kind's file, overwriting
// any existing file. Nil elements and shapes of a different kind are
// silently excluded; an empty or nil collection writes the codec's empty
// representation.
func (s *Store) Save(kind shape.Kind, shapes []shape.Shape) error {
	views := make([]shape.AttrMap, 0, len(shapes))
	for _, sh := range shapes {
		if sh == nil || sh.Kind() != kind {
			continue
		}
		views = append(views, sh.AttributeMap())
	}
	data, err := s.codec.Encode(kind, views)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(kind), data, 0o644)
}

// Load reads the kind's file and reconstructs its shapes. A missing file
// yields an empty list, not an error. Codec parse errors and shape
// validation errors propagate unwrapped.
func (s *Store) Load(kind shape.Kind) ([]shape.Shape, error) {
	data, err := os.ReadFile(s.Path(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return []shape.Shape{}, nil
	}
	if err != nil {
		return nil, err
	}

	views, err := s.codec.Decode(kind, data)
	if err != nil {
		return nil, err
	}

	shapes := make([]shape.Shape, 0, len(views))
	for _, view := range views {
		sh, err := shape.New(s.ids, kind, view)
		if err != nil {
			return nil, err
		}
		if sh == nil {
			continue
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}
