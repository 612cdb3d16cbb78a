package anchor

import (
	"math"

	"github.com/kortschak/bar/pairhmm"
)

// Rectangle is a half-open sub-region [X1,X2) x [Y1,Y2) of the edit
// matrix, used both as a split point and as the input to one banded
// alignment call.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

// Area returns the rectangle's matrix area, as the split budget compares
// against it.
func (r Rectangle) Area() int64 { return int64(r.X2-r.X1) * int64(r.Y2-r.Y1) }

// splitStep closes a rectangle at (x2+hX, y2+hY) and opens the next one at
// (x3-hX, y3-hY) when the gap between the previous anchor (x2,y2) and the
// next one (x3,y3) would exceed budget; otherwise it is a no-op and the
// open corner (x1,y1) is carried forward unchanged.
func splitStep(x1, y1, x2, y2, x3, y3 int, out []Rectangle, budget int64) (int, int, []Rectangle) {
	lX2 := x3 - x2
	lY2 := y3 - y2
	if int64(lX2)*int64(lY2) <= budget {
		return x1, y1, out
	}
	maxLen := int(math.Sqrt(float64(budget)))
	hX, hY := lX2/2, lY2/2
	if hX > maxLen {
		hX = maxLen
	}
	if hY > maxLen {
		hY = maxLen
	}
	out = append(out, Rectangle{x1, y1, x2 + hX, y2 + hY})
	return x3 - hX, y3 - hY, out
}

// GetSplitPoints walks the anchors in order and cuts [0,lX)x[0,lY) into
// rectangles at every gap between consecutive anchors (or between the last
// anchor and (lX,lY)) whose area exceeds budget. At such a gap the current
// rectangle is closed up to min(half the gap, sqrt(budget)) past the
// earlier anchor and the next one opens the same distance before the later
// anchor, so the middle of a wide gap lies in no rectangle. Each anchor
// lies within the rectangle that covers its x+y. Only gaps are compared
// against budget: a rectangle spanning many closely spaced anchors can
// have an area larger than budget.
func GetSplitPoints(anchors []Pair, lX, lY int, budget int64) ([]Rectangle, error) {
	if lX < 0 || lY < 0 {
		return nil, badAnchors("negative sequence length lX=%d lY=%d", lX, lY)
	}

	x1, y1, x2, y2 := 0, 0, 0, 0
	var points []Rectangle
	for _, a := range anchors {
		x3, y3 := a[0], a[1]
		x1, y1, points = splitStep(x1, y1, x2, y2, x3, y3, points, budget)
		if x3 < x2 || y3 < y2 || x3 >= lX || y3 >= lY {
			return nil, badAnchors("anchor (%d,%d) out of range or order for lX=%d lY=%d", x3, y3, lX, lY)
		}
		x2, y2 = x3+1, y3+1
	}
	x1, y1, points = splitStep(x1, y1, x2, y2, lX, lY, points, budget)
	points = append(points, Rectangle{x1, y1, lX, lY})

	return points, nil
}

// SplitAlignmentsByLargeGaps partitions the alignment problem at anchor
// gaps too large to band directly, runs the banded posterior engine on
// each resulting rectangle, and shifts the results back into sX/sY's
// coordinate space.
func SplitAlignmentsByLargeGaps(anchors []Pair, sX, sY pairhmm.SymbolString, p pairhmm.Parameters) ([]pairhmm.AlignedPair, error) {
	splitPoints, err := GetSplitPoints(anchors, len(sX), len(sY), p.SplitMatrixBiggerThanThis)
	if err != nil {
		return nil, err
	}
	stats := Summarise(splitPoints)
	Vprintf("split into %d rectangles: mean area %.0f, max area %.0f, variance %.0f, total area %.0f\n",
		stats.Count, stats.MeanArea, stats.MaxArea, stats.Variance, stats.TotalArea)

	var aligned []pairhmm.AlignedPair
	j := 0
	for _, rect := range splitPoints {
		sX2 := sX[rect.X1:rect.X2]
		sY2 := sY[rect.Y1:rect.Y2]

		var sub []Pair
		for j < len(anchors) {
			x, y := anchors[j][0], anchors[j][1]
			if x+y >= rect.X2+rect.Y2 {
				break
			}
			if x < rect.X1 || x >= rect.X2 || y < rect.Y1 || y >= rect.Y2 {
				return nil, badAnchors("anchor (%d,%d) falls outside its assigned split rectangle %+v", x, y, rect)
			}
			sub = append(sub, Pair{x - rect.X1, y - rect.Y1})
			j++
		}

		subPairs, err := pairhmm.GetAlignedPairsWithBanding(sub, sX2, sY2, p)
		if err != nil {
			return nil, err
		}
		for _, ap := range subPairs {
			aligned = append(aligned, pairhmm.AlignedPair{Prob: ap.Prob, X: ap.X + rect.X1, Y: ap.Y + rect.Y1})
		}
	}

	Vprintf("%d aligned pairs found across all split rectangles\n", len(aligned))
	return aligned, nil
}

// SplitStats summarises the areas of a split-point set for diagnostic
// logging; see SPEC_FULL.md §4.11/§10. It is exercised by cmd/bar's -v
// flag.
type SplitStats struct {
	Count              int
	MeanArea, Variance float64
	MaxArea, TotalArea float64
}

// Summarise computes SplitStats for a set of split rectangles.
func Summarise(points []Rectangle) SplitStats {
	if len(points) == 0 {
		return SplitStats{}
	}
	areas := make([]float64, len(points))
	for i, r := range points {
		areas[i] = float64(r.Area())
	}
	mean, variance, max, total := statsOf(areas)
	return SplitStats{
		Count:     len(points),
		MeanArea:  mean,
		Variance:  variance,
		MaxArea:   max,
		TotalArea: total,
	}
}
