package shape_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/jacentio/planar/shape"
)

// --- Allocator Tests ---

func TestAllocator_Sequence(t *testing.T) {
	ids := shape.NewAllocator()

	prev := 0
	for i := 0; i < 10; i++ {
		id := ids.NextID()
		if id <= prev {
			t.Fatalf("expected strictly increasing ids, got %d after %d", id, prev)
		}
		prev = id
	}
}

func TestAllocator_FirstIDIsOne(t *testing.T) {
	ids := shape.NewAllocator()
	if id := ids.NextID(); id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}
}

func TestAllocator_ExplicitIDDoesNotAdvance(t *testing.T) {
	ids := shape.NewAllocator()

	if _, err := shape.NewRectangleWithID(98, 10, 2, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := shape.NewSquareWithID(99, 5, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The WithID constructors never touched the counter.
	if id := ids.NextID(); id != 1 {
		t.Errorf("expected next id 1, got %d", id)
	}
}

func TestAllocator_SharedAcrossKinds(t *testing.T) {
	ids := shape.NewAllocator()

	r, err := shape.NewRectangle(ids, 10, 2, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := shape.NewSquare(ids, 5, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One shared sequence, not per-kind sequences.
	if r.ID != 1 {
		t.Errorf("expected rectangle id 1, got %d", r.ID)
	}
	if s.ID != 2 {
		t.Errorf("expected square id 2, got %d", s.ID)
	}
}

func TestAllocator_Concurrent(t *testing.T) {
	ids := shape.NewAllocator()

	const n = 100
	out := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = ids.NextID()
		}(i)
	}
	wg.Wait()

	sort.Ints(out)
	for i := 1; i < n; i++ {
		if out[i] == out[i-1] {
			t.Fatalf("duplicate id %d", out[i])
		}
	}
}
