package shape

import "fmt"

// ValidationError reports an invalid geometry attribute, such as a
// non-positive width. It is returned by constructors and
// ApplyAttributeMap and propagates through the factory and store layers
// unchanged.
type ValidationError struct {
	Kind  Kind
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("planar: %s: %s must be > 0, got %d", e.Kind, e.Field, e.Value)
}
