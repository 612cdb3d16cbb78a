package pairhmm

import "testing"

func TestDpMatrixCreateGetDelete(t *testing.T) {
	m := NewDpMatrix(5)
	d, _ := NewDiagonal(3, -1, 1)

	if got := m.Get(3); got != nil {
		t.Fatalf("Get(3) before Create = %v, want nil", got)
	}
	dd := m.Create(d)
	if m.Active() != 1 {
		t.Errorf("Active() = %d, want 1", m.Active())
	}
	if m.Get(3) != dd {
		t.Error("Get(3) does not return the created diagonal")
	}

	m.Delete(3)
	if m.Active() != 0 {
		t.Errorf("Active() after Delete = %d, want 0", m.Active())
	}
	if m.Get(3) != nil {
		t.Error("Get(3) after Delete should be nil")
	}
}

func TestDpMatrixDeleteAbsentIsNoop(t *testing.T) {
	m := NewDpMatrix(5)
	m.Delete(2) // should not panic
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.Active())
	}
}

func TestDpMatrixCreatePanicsOnDoubleLive(t *testing.T) {
	m := NewDpMatrix(5)
	d, _ := NewDiagonal(3, -1, 1)
	m.Create(d)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic creating an already-live antidiagonal")
		}
	}()
	m.Create(d)
}

func TestDpMatrixGetOutOfRange(t *testing.T) {
	m := NewDpMatrix(3)
	if got := m.Get(-1); got != nil {
		t.Errorf("Get(-1) = %v, want nil", got)
	}
	if got := m.Get(100); got != nil {
		t.Errorf("Get(100) = %v, want nil", got)
	}
}
