package anchor

import "testing"

func TestFilterToRemoveOverlapKeepsStrictlyIncreasing(t *testing.T) {
	in := []Pair{{0, 0}, {1, 1}, {2, 2}}
	out, err := FilterToRemoveOverlap(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3: %v", len(out), out)
	}
}

func TestFilterToRemoveOverlapDropsDominated(t *testing.T) {
	// (1,5) is dominated in y by nothing ahead of it but is not a suffix
	// minimum once (3,1) appears later with a smaller y; filtering must
	// keep only the chain that is strictly increasing in both coordinates.
	in := []Pair{{0, 0}, {1, 5}, {3, 1}, {4, 6}}
	out, err := FilterToRemoveOverlap(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(out); i++ {
		if out[i][0] <= out[i-1][0] || out[i][1] <= out[i-1][1] {
			t.Errorf("output not strictly increasing at index %d: %v", i, out)
		}
	}
}

func TestFilterToRemoveOverlapRejectsUnsorted(t *testing.T) {
	in := []Pair{{2, 2}, {1, 1}}
	_, err := FilterToRemoveOverlap(in)
	if err == nil {
		t.Fatal("expected error for unsorted input, got nil")
	}
}

func TestFilterToRemoveOverlapEmpty(t *testing.T) {
	out, err := FilterToRemoveOverlap(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}
