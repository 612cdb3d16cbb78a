package anchor

import (
	"sort"

	"github.com/kortschak/bar/pairhmm"
)

// SeedFinder abstracts the external local-alignment tool used to seed the
// band: given two raw sequences, a trim length, and whether repeat-masked
// (lower-case) bases should be treated specially, it returns match
// coordinates local to sX/sY. Coordinates need not be sorted; the caller
// sorts and filters them. Implementations that shell out to a real seed
// finder are expected to apply the trim themselves, discarding the first
// and last trim bases of every matched run.
type SeedFinder interface {
	FindSeedMatches(sX, sY []byte, trim int, repeatMask bool) ([]Pair, error)
}

func sortByXPlusY(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i][0]+pairs[i][1] < pairs[j][0]+pairs[j][1]
	})
}

func convertBlastPairs(pairs []Pair, offsetX, offsetY int) {
	for i := range pairs {
		pairs[i][0] += offsetX
		pairs[i][1] += offsetY
	}
}

// GetBlastPairsForPairwiseAlignmentParameters runs finder over sX/sY (and,
// where inner rectangles are dense enough, recursively over non-repeat-
// masked copies of those rectangles) to build a strictly-increasing anchor
// chain suitable for NewBand / the split driver. It returns nil, nil
// without invoking finder at all when lX*lY does not exceed
// p.AnchorMatrixBiggerThanThis.
func GetBlastPairsForPairwiseAlignmentParameters(sX, sY []byte, finder SeedFinder, p pairhmm.Parameters) ([]Pair, error) {
	lX, lY := len(sX), len(sY)
	if int64(lX)*int64(lY) <= p.AnchorMatrixBiggerThanThis {
		return nil, nil
	}

	unfiltered, err := finder.FindSeedMatches(sX, sY, p.ConstraintDiagonalTrim, true)
	if err != nil {
		return nil, err
	}
	Vprintf("top level: %d raw seed matches\n", len(unfiltered))
	sortByXPlusY(unfiltered)
	topLevel, err := FilterToRemoveOverlap(unfiltered)
	if err != nil {
		return nil, err
	}
	Vprintf("top level: %d anchors after overlap filtering\n", len(topLevel))

	pX, pY := 0, 0
	var combined []Pair
	for _, a := range topLevel {
		x, y := a[0], a[1]
		if x < 0 || x >= lX || y < 0 || y >= lY || x < pX || y < pY {
			return nil, badAnchors("top level anchor (%d,%d) out of range or order (pX=%d pY=%d lX=%d lY=%d)", x, y, pX, pY, lX, lY)
		}
		inner, err := blastPairsForRectangle(sX, sY, pX, pY, x, y, finder, p)
		if err != nil {
			return nil, err
		}
		combined = append(combined, inner...)
		combined = append(combined, a)
		pX, pY = x+1, y+1
	}
	inner, err := blastPairsForRectangle(sX, sY, pX, pY, lX, lY, finder, p)
	if err != nil {
		return nil, err
	}
	combined = append(combined, inner...)

	Vprintf("%d anchors total after non-repeat-masked recursion\n", len(combined))
	return combined, nil
}

// blastPairsForRectangle adds bottom-level (non-repeat-masked) anchors
// inside the rectangle [pX,x)x[pY,y) when that rectangle is large enough
// to be worth the extra pass, translating the result back to the
// caller's coordinate space.
func blastPairsForRectangle(sX, sY []byte, pX, pY, x, y int, finder SeedFinder, p pairhmm.Parameters) ([]Pair, error) {
	lX2 := x - pX
	lY2 := y - pY
	if lX2 < 0 || lY2 < 0 {
		return nil, badAnchors("inner rectangle has negative extent: (%d,%d)-(%d,%d)", pX, pY, x, y)
	}
	if int64(lX2)*int64(lY2) <= p.RepeatMaskMatrixBiggerThanThis {
		return nil, nil
	}

	sX2 := sX[pX:x]
	sY2 := sY[pY:y]
	unfiltered, err := finder.FindSeedMatches(sX2, sY2, p.ConstraintDiagonalTrim, false)
	if err != nil {
		return nil, err
	}
	sortByXPlusY(unfiltered)
	filtered, err := FilterToRemoveOverlap(unfiltered)
	if err != nil {
		return nil, err
	}
	convertBlastPairs(filtered, pX, pY)
	return filtered, nil
}
