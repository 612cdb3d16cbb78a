package pairhmm

// DpDiagonal owns a Diagonal and the dense array of cells that covers it.
// Cells are addressed by xmy (parity matching the diagonal's Xay); an
// address outside [XmyL, XmyR] has no cell.
type DpDiagonal struct {
	diagonal Diagonal
	cells    []Cell // len == diagonal.Width()
}

// NewDpDiagonal allocates a DpDiagonal for d with every cell LogZero.
func NewDpDiagonal(d Diagonal) *DpDiagonal {
	dd := &DpDiagonal{diagonal: d, cells: make([]Cell, d.Width())}
	dd.ZeroValues()
	return dd
}

// Diagonal returns the Diagonal this DpDiagonal covers.
func (d *DpDiagonal) Diagonal() Diagonal { return d.diagonal }

// Cell returns a pointer to the cell at xmy, or nil if xmy lies outside
// the diagonal's window.
func (d *DpDiagonal) Cell(xmy int) *Cell {
	if xmy < d.diagonal.XmyL || xmy > d.diagonal.XmyR {
		return nil
	}
	return &d.cells[(xmy-d.diagonal.XmyL)/2]
}

// ZeroValues sets every cell to LogZero.
func (d *DpDiagonal) ZeroValues() {
	for i := range d.cells {
		for s := 0; s < StateCount; s++ {
			d.cells[i][s] = LogZero
		}
	}
}

// InitialiseValues sets every cell's state s to f(s), for every in-range
// xmy of correct parity.
func (d *DpDiagonal) InitialiseValues(f func(State) float64) {
	for i := range d.cells {
		for s := 0; s < StateCount; s++ {
			d.cells[i][s] = f(State(s))
		}
	}
}

// Clone returns an independent copy of d.
func (d *DpDiagonal) Clone() *DpDiagonal {
	c := &DpDiagonal{diagonal: d.diagonal, cells: make([]Cell, len(d.cells))}
	copy(c.cells, d.cells)
	return c
}

// DotProduct returns the LogAdd fold, over every cell pair at matching xmy,
// of the cell dot product of d and other. d and other must cover the same
// Diagonal.
func (d *DpDiagonal) DotProduct(other *DpDiagonal) float64 {
	if d.diagonal != other.diagonal {
		panic("pairhmm: DotProduct of mismatched diagonals")
	}
	total := LogZero
	for i := range d.cells {
		total = LogAdd(total, dot(&d.cells[i], &other.cells[i]))
	}
	return total
}
