package pairhmm

import "testing"

func TestNewDiagonalValid(t *testing.T) {
	d, err := NewDiagonal(10, -4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Width() != 5 {
		t.Errorf("Width() = %d, want 5", d.Width())
	}
}

func TestNewDiagonalRejectsParityMismatch(t *testing.T) {
	_, err := NewDiagonal(10, -3, 4)
	if err == nil {
		t.Fatal("expected error for parity mismatch, got nil")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != BadDiagonal {
		t.Errorf("err = %v, want *Error{Kind: BadDiagonal}", err)
	}
}

func TestNewDiagonalRejectsInvertedBound(t *testing.T) {
	_, err := NewDiagonal(10, 4, -4)
	if err == nil {
		t.Fatal("expected error for xmyL > xmyR, got nil")
	}
}

func TestXYCoordRoundTrip(t *testing.T) {
	for xay := 0; xay < 20; xay++ {
		for xmy := -xay; xmy <= xay; xmy += 2 {
			x := XCoord(xay, xmy)
			y := YCoord(xay, xmy)
			if x+y != xay || x-y != xmy {
				t.Errorf("XCoord/YCoord(%d, %d) = (%d, %d), does not invert", xay, xmy, x, y)
			}
		}
	}
}
