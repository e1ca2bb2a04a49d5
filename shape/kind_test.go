package shape_test

import (
	"reflect"
	"testing"

	"github.com/jacentio/planar/shape"
)

// --- Kind Tests ---

func TestKind_Columns(t *testing.T) {
	tests := []struct {
		kind shape.Kind
		want []string
	}{
		{shape.KindRectangle, []string{"id", "width", "height", "x", "y"}},
		{shape.KindSquare, []string{"id", "size", "x", "y"}},
		{shape.Kind("Circle"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Columns(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want shape.Kind
		ok   bool
	}{
		{"Rectangle", shape.KindRectangle, true},
		{"Square", shape.KindSquare, true},
		{"rectangle", "", false},
		{"Circle", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shape.ParseKind(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseKind(%q) = (%q, %v), expected (%q, %v)", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKinds_Closed(t *testing.T) {
	kinds := shape.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("expected 2 registered kinds, got %d", len(kinds))
	}
	for _, k := range kinds {
		if _, ok := shape.ParseKind(k.String()); !ok {
			t.Errorf("kind %q does not round-trip through ParseKind", k)
		}
	}
}
