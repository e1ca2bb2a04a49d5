package shape

// Kind tags one of the closed set of shape variants. The set is
// intentionally closed: files on disk and items in DynamoDB are keyed by
// these names, so adding a kind is a format change, not a registration.
type Kind string

const (
	// KindRectangle is the Rectangle variant.
	KindRectangle Kind = "Rectangle"

	// KindSquare is the Square variant.
	KindSquare Kind = "Square"
)

// Kinds returns all registered kinds.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindSquare}
}

// ParseKind maps a type name to its Kind. ok is false for names outside
// the registered set.
func ParseKind(name string) (Kind, bool) {
	switch Kind(name) {
	case KindRectangle:
		return KindRectangle, true
	case KindSquare:
		return KindSquare, true
	}
	return "", false
}

// Columns returns the kind's fixed attribute order. The order is the flat
// codec's column order and also the order ApplyAttributeMap assigns in:
// id first, then geometry, then position. Unregistered kinds have no
// columns.
func (k Kind) Columns() []string {
	switch k {
	case KindRectangle:
		return []string{"id", "width", "height", "x", "y"}
	case KindSquare:
		return []string{"id", "size", "x", "y"}
	}
	return nil
}

// String returns the kind's type name.
func (k Kind) String() string {
	return string(k)
}
