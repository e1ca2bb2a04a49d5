package shape

// AttrMap is a dictionary view of a shape: attribute name to integer
// value. Key order is supplied externally by the kind's Columns; the map
// itself is key-addressed.
type AttrMap map[string]int

// Shape is the capability set the codec and store layers consume.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind

	// AttributeMap exports the shape's attributes as a dictionary view.
	AttributeMap() AttrMap

	// ApplyAttributeMap assigns every recognized key from attrs,
	// validating as it goes. Keys are applied in the kind's column
	// order, but each assignment is independent, so partial maps and
	// unknown keys are fine. Returns *ValidationError on invalid
	// geometry.
	ApplyAttributeMap(attrs AttrMap) error
}

// Rectangle is an axis-aligned rectangle at (X, Y).
type Rectangle struct {
	ID     int
	Width  int
	Height int
	X      int
	Y      int
}

// NewRectangle creates a Rectangle with an id drawn from ids.
// Width and height must be positive; x and y are taken as given
// (non-negative by convention, not enforced).
func NewRectangle(ids *Allocator, width, height, x, y int) (*Rectangle, error) {
	return NewRectangleWithID(ids.NextID(), width, height, x, y)
}

// NewRectangleWithID creates a Rectangle with an explicit id. The
// allocator is not consulted, so the id may collide with auto-assigned
// ones.
func NewRectangleWithID(id, width, height, x, y int) (*Rectangle, error) {
	r := &Rectangle{ID: id}
	if err := r.ApplyAttributeMap(AttrMap{"width": width, "height": height, "x": x, "y": y}); err != nil {
		return nil, err
	}
	return r, nil
}

// Kind returns KindRectangle.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// AttributeMap exports id, width, height, x and y.
func (r *Rectangle) AttributeMap() AttrMap {
	return AttrMap{
		"id":     r.ID,
		"width":  r.Width,
		"height": r.Height,
		"x":      r.X,
		"y":      r.Y,
	}
}

// ApplyAttributeMap assigns the recognized keys present in attrs.
func (r *Rectangle) ApplyAttributeMap(attrs AttrMap) error {
	for _, col := range KindRectangle.Columns() {
		v, ok := attrs[col]
		if !ok {
			continue
		}
		switch col {
		case "id":
			r.ID = v
		case "width":
			if v <= 0 {
				return &ValidationError{Kind: KindRectangle, Field: "width", Value: v}
			}
			r.Width = v
		case "height":
			if v <= 0 {
				return &ValidationError{Kind: KindRectangle, Field: "height", Value: v}
			}
			r.Height = v
		case "x":
			r.X = v
		case "y":
			r.Y = v
		}
	}
	return nil
}

// Square is a rectangle whose sides are equal; Size acts as both
// dimensions.
type Square struct {
	ID   int
	Size int
	X    int
	Y    int
}

// NewSquare creates a Square with an id drawn from ids. Size must be
// positive.
func NewSquare(ids *Allocator, size, x, y int) (*Square, error) {
	return NewSquareWithID(ids.NextID(), size, x, y)
}

// NewSquareWithID creates a Square with an explicit id.
func NewSquareWithID(id, size, x, y int) (*Square, error) {
	s := &Square{ID: id}
	if err := s.ApplyAttributeMap(AttrMap{"size": size, "x": x, "y": y}); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind returns KindSquare.
func (s *Square) Kind() Kind { return KindSquare }

// AttributeMap exports id, size, x and y.
func (s *Square) AttributeMap() AttrMap {
	return AttrMap{
		"id":   s.ID,
		"size": s.Size,
		"x":    s.X,
		"y":    s.Y,
	}
}

// ApplyAttributeMap assigns the recognized keys present in attrs.
func (s *Square) ApplyAttributeMap(attrs AttrMap) error {
	for _, col := range KindSquare.Columns() {
		v, ok := attrs[col]
		if !ok {
			continue
		}
		switch col {
		case "id":
			s.ID = v
		case "size":
			if v <= 0 {
				return &ValidationError{Kind: KindSquare, Field: "size", Value: v}
			}
			s.Size = v
		case "x":
			s.X = v
		case "y":
			s.Y = v
		}
	}
	return nil
}

// Width returns the square's horizontal extent (its size).
func (s *Square) Width() int { return s.Size }

// Height returns the square's vertical extent (its size).
func (s *Square) Height() int { return s.Size }
