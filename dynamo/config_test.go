package dynamo

import "testing"

// --- Config Tests ---

func TestConfig_Validate_Defaults(t *testing.T) {
	c := Config{}
	c.validate()

	if c.Table != "planar_shapes" {
		t.Errorf("expected default table 'planar_shapes', got %q", c.Table)
	}
	if c.NumShards != 1 {
		t.Errorf("expected default NumShards 1, got %d", c.NumShards)
	}
}

func TestConfig_Validate_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"negative", -1, 1},
		{"zero", 0, 1},
		{"in range", 16, 16},
		{"above max", 1000, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{NumShards: tt.in}
			c.validate()
			if c.NumShards != tt.want {
				t.Errorf("expected NumShards %d, got %d", tt.want, c.NumShards)
			}
		})
	}
}
