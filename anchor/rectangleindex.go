package anchor

import "github.com/biogo/store/interval"

// rectangleNode adapts a Rectangle to interval.IntInterface, keyed by its
// antidiagonal span [x1+y1, x2+y2).
type rectangleNode struct {
	id uintptr
	r  Rectangle
}

func (n *rectangleNode) Range() interval.IntRange {
	return interval.IntRange{Start: n.r.X1 + n.r.Y1, End: n.r.X2 + n.r.Y2}
}

func (n *rectangleNode) ID() uintptr { return n.id }

func (n *rectangleNode) Overlap(b interval.IntRange) bool {
	r := n.Range()
	return r.Start < b.End && b.Start < r.End
}

// RectangleIndex answers which split rectangle owns a given antidiagonal
// in O(log n), for diagnostics and tests that need random-access lookups
// into a split-point set rather than the sequential cursor that
// SplitAlignmentsByLargeGaps itself uses while walking anchors in order.
type RectangleIndex struct {
	tree *interval.IntTree
}

// NewRectangleIndex builds a RectangleIndex over points.
func NewRectangleIndex(points []Rectangle) (*RectangleIndex, error) {
	t := &interval.IntTree{}
	for i, r := range points {
		n := &rectangleNode{id: uintptr(i), r: r}
		if err := t.Insert(n, false); err != nil {
			return nil, err
		}
	}
	return &RectangleIndex{tree: t}, nil
}

// At returns the rectangle whose antidiagonal span contains xay.
func (idx *RectangleIndex) At(xay int) (Rectangle, bool) {
	matches := idx.tree.Get(&rectangleNode{r: Rectangle{X1: xay, Y1: 0, X2: xay + 1, Y2: 0}})
	if len(matches) == 0 {
		return Rectangle{}, false
	}
	return matches[0].(*rectangleNode).r, true
}
