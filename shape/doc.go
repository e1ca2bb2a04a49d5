// Package shape defines the closed family of 2-D shape values and the
// machinery that gives them stable identities.
//
// Planar models a deliberately small, closed set of shape kinds
// (Rectangle, Square). Each shape carries an integer id plus a fixed set
// of integer attributes, and exposes a dictionary view of itself for the
// codec and store layers.
//
// # Shape Interface
//
// All shapes implement the [Shape] interface:
//
//	type Shape interface {
//	    Kind() Kind
//	    AttributeMap() AttrMap
//	    ApplyAttributeMap(AttrMap) error
//	}
//
// AttributeMap exports the shape's attributes; ApplyAttributeMap assigns
// every recognized key independently, so callers may supply partial maps
// in any order. Unknown keys are ignored.
//
// # Identity
//
// Ids come from an [Allocator], an owned monotonic counter injected into
// the construction paths. Constructors that omit an explicit id draw the
// next id; the WithID constructors never touch the counter. An explicitly
// supplied id may collide with an auto-assigned one - this is accepted,
// not validated.
//
// # Factory
//
// [New] builds a shape from a kind tag and an attribute map. Unregistered
// kinds yield (nil, nil), never an error; callers rely on this permissive
// contract.
package shape
