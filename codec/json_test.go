package codec_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jacentio/planar/codec"
	"github.com/jacentio/planar/shape"
)

// --- JSON Encode Tests ---

func TestJSON_Encode_Empty(t *testing.T) {
	tests := []struct {
		name  string
		views []shape.AttrMap
	}{
		{"nil", nil},
		{"empty", []shape.AttrMap{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.JSON{}.Encode(shape.KindRectangle, tt.views)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != "[]" {
				t.Errorf("expected literal '[]', got %q", data)
			}
		})
	}
}

func TestJSON_Ext(t *testing.T) {
	if got := (codec.JSON{}).Ext(); got != "json" {
		t.Errorf("expected 'json', got %q", got)
	}
}

// --- JSON Decode Tests ---

func TestJSON_Decode_Empty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"newlines", "\n\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := codec.JSON{}.Decode(shape.KindRectangle, []byte(tt.text))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(views) != 0 {
				t.Errorf("expected empty list, got %v", views)
			}
		})
	}
}

func TestJSON_Decode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"truncated array", `[{"id": 1}`},
		{"not json", "id,width"},
		{"bare word", "null true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.JSON{}.Decode(shape.KindRectangle, []byte(tt.text))

			var pErr *codec.ParseError
			if !errors.As(err, &pErr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pErr.Format != "json" {
				t.Errorf("expected format 'json', got %q", pErr.Format)
			}
		})
	}
}

// --- JSON Round-Trip Tests ---

func TestJSON_RoundTrip(t *testing.T) {
	views := []shape.AttrMap{
		{"id": 5, "width": 10, "height": 2, "x": 0, "y": 0},
		{"id": 6, "width": 1, "height": 1, "x": 4, "y": 3},
	}

	data, err := codec.JSON{}.Encode(shape.KindRectangle, views)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	got, err := codec.JSON{}.Decode(shape.KindRectangle, data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !reflect.DeepEqual(got, views) {
		t.Errorf("expected %v, got %v", views, got)
	}
}

func TestJSON_RoundTrip_EmptyList(t *testing.T) {
	data, err := codec.JSON{}.Encode(shape.KindSquare, nil)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	got, err := codec.JSON{}.Decode(shape.KindSquare, data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}
