package shape

// New builds a shape of the given kind from a dictionary view.
//
// Each kind is first constructed from a placeholder template that
// satisfies its required arguments (so the value is valid before the real
// attributes are known), drawing an id from ids exactly as a direct
// construction would. The attribute map is then applied on top,
// overwriting every placeholder it names - including the id, when attrs
// carries one.
//
// Unregistered kinds return (nil, nil); callers rely on this permissive
// contract. A *ValidationError from applying attrs propagates unchanged.
func New(ids *Allocator, kind Kind, attrs AttrMap) (Shape, error) {
	var (
		sh  Shape
		err error
	)
	switch kind {
	case KindRectangle:
		sh, err = NewRectangle(ids, 1, 1, 1, 0)
	case KindSquare:
		sh, err = NewSquare(ids, 1, 0, 0)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := sh.ApplyAttributeMap(attrs); err != nil {
		return nil, err
	}
	return sh, nil
}
