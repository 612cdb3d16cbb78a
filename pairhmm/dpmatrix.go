package pairhmm

// DpMatrix is a sparse, index-addressed store of DpDiagonals: antidiagonal
// index 0..D may be live (a non-nil slot) or absent. Creating an
// already-live index is a bug and panics; deleting an absent index is a
// no-op.
type DpMatrix struct {
	diagonals []*DpDiagonal // len == D+1
	active    int
}

// NewDpMatrix returns a DpMatrix able to hold antidiagonals 0..diagonalNumber.
func NewDpMatrix(diagonalNumber int) *DpMatrix {
	return &DpMatrix{diagonals: make([]*DpDiagonal, diagonalNumber+1)}
}

// Get returns the DpDiagonal at xay, or nil if xay is out of range or
// absent.
func (m *DpMatrix) Get(xay int) *DpDiagonal {
	if xay < 0 || xay >= len(m.diagonals) {
		return nil
	}
	return m.diagonals[xay]
}

// Active returns the number of currently-live antidiagonals.
func (m *DpMatrix) Active() int { return m.active }

// Create allocates and stores a new DpDiagonal for d, returning it. It
// panics if d's antidiagonal is already live: that is an internal
// invariant violation, not a user error.
func (m *DpMatrix) Create(d Diagonal) *DpDiagonal {
	if d.Xay < 0 || d.Xay >= len(m.diagonals) {
		panic("pairhmm: DpMatrix.Create: antidiagonal out of range")
	}
	if m.diagonals[d.Xay] != nil {
		panic("pairhmm: DpMatrix.Create: antidiagonal already live")
	}
	dd := NewDpDiagonal(d)
	m.diagonals[d.Xay] = dd
	m.active++
	return dd
}

// Delete removes the antidiagonal at xay, if present. Deleting an absent
// index is a no-op.
func (m *DpMatrix) Delete(xay int) {
	if xay < 0 || xay >= len(m.diagonals) {
		return
	}
	if m.diagonals[xay] != nil {
		m.diagonals[xay] = nil
		m.active--
	}
}
