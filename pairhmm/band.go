package pairhmm

// Band precomputes, for every antidiagonal 0..lX+lY, the xmy window that
// the banded DP is allowed to visit: the rectangle induced by the anchor
// chain expanded by a constant diagonalExpansion, clipped to [0,lX]x[0,lY].
// A Band is immutable once constructed.
type Band struct {
	diagonals []Diagonal // indexed by xay
	lXalY     int
}

func avoidOffByOne(xay, xmy int) int {
	if (xay+xmy)%2 == 0 {
		return xmy
	}
	return xmy + 1
}

// nudge shifts *xmy by 2*(j-i)*k when i < j, matching the reference
// aligner's band_setCurrentDiagonalP: it walks the xmy bound back onto the
// diagonal's own antidiagonal when the candidate coordinate pair (i, j)
// straddles it.
func nudge(xmy *int, i, j, k int) {
	if i < j {
		*xmy += 2 * (j - i) * k
	}
}

func setCurrentDiagonal(xay, xL, yL, xU, yU int) (Diagonal, error) {
	xmyL := xL - yL
	xmyR := xU - yU

	xmyL = avoidOffByOne(xay, xmyL)
	xmyR = avoidOffByOne(xay, xmyR)

	nudge(&xmyL, XCoord(xay, xmyL), xL, 1)
	nudge(&xmyL, yL, YCoord(xay, xmyL), 1)
	nudge(&xmyR, xU, XCoord(xay, xmyR), -1)
	nudge(&xmyR, YCoord(xay, xmyR), yU, -1)

	return NewDiagonal(xay, xmyL, xmyR)
}

func boundCoordinate(z, lZ int) int {
	if z < 0 {
		return 0
	}
	if z > lZ {
		return lZ
	}
	return z
}

// NewBand constructs a Band from a strictly-increasing anchor chain
// (each (ax, ay) satisfying 0<=ax<lX, 0<=ay<lY, both coordinates strictly
// increasing between successive anchors), sequence lengths, and an even,
// non-negative expansion.
func NewBand(anchors [][2]int, lX, lY, expansion int) (*Band, error) {
	if lX < 0 || lY < 0 {
		return nil, errf(BadParameters, "negative sequence length: lX=%d lY=%d", lX, lY)
	}
	if expansion < 0 || expansion%2 != 0 {
		return nil, errf(BadParameters, "expansion must be even and non-negative: %d", expansion)
	}

	b := &Band{
		diagonals: make([]Diagonal, lX+lY+1),
		lXalY:     lX + lY,
	}

	anchorIndex := 0
	pxay, pxmy := 0, 0
	nxay, nxmy := 0, 0
	xL, yL, xU, yU := 0, 0, 0, 0

	xay := 0
	for xay <= b.lXalY {
		d, err := setCurrentDiagonal(xay, xL, yL, xU, yU)
		if err != nil {
			return nil, err
		}
		b.diagonals[xay] = d

		reachedNext := nxay == xay
		xay++
		if !reachedNext {
			continue
		}

		pxay, pxmy = nxay, nxmy

		x, y := lX, lY
		if anchorIndex < len(anchors) {
			ax, ay := anchors[anchorIndex][0], anchors[anchorIndex][1]
			anchorIndex++
			// Plus one: matrix coordinates are +1 relative to sequence
			// coordinates (x=0 is "before the first base").
			x, y = ax+1, ay+1

			if x <= XCoord(pxay, pxmy) || y <= YCoord(pxay, pxmy) || x > lX || y > lY || x <= 0 || y <= 0 {
				return nil, errf(BadAnchors,
					"anchor (%d,%d) out of order or out of range for lX=%d lY=%d", ax, ay, lX, lY)
			}
		}

		nxay = x + y
		nxmy = x - y

		xL = boundCoordinate(XCoord(pxay, pxmy-expansion), lX)
		yL = boundCoordinate(YCoord(nxay, nxmy-expansion), lY)
		xU = boundCoordinate(XCoord(nxay, nxmy+expansion), lX)
		yU = boundCoordinate(YCoord(pxay, pxmy+expansion), lY)
	}

	return b, nil
}

// Len returns the number of antidiagonals in the band (lX+lY+1).
func (b *Band) Len() int { return b.lXalY + 1 }

// At returns the precomputed Diagonal for antidiagonal xay, clamped to
// [0, lX+lY].
func (b *Band) At(xay int) Diagonal {
	if xay > b.lXalY {
		xay = b.lXalY
	}
	if xay < 0 {
		xay = 0
	}
	return b.diagonals[xay]
}

// BandIterator is a single-threaded, cheaply-clonable cursor over a Band.
type BandIterator struct {
	band  *Band
	index int
}

// NewBandIterator returns an iterator positioned before the first
// antidiagonal of band.
func NewBandIterator(band *Band) *BandIterator {
	return &BandIterator{band: band, index: 0}
}

// Next returns the diagonal at the current index and advances, clamping at
// the last antidiagonal.
func (it *BandIterator) Next() Diagonal {
	d := it.band.At(it.index)
	if it.index <= it.band.lXalY {
		it.index++
	}
	return d
}

// Previous decrements the current index, clamping at zero, then returns
// the diagonal there.
func (it *BandIterator) Previous() Diagonal {
	if it.index > 0 {
		it.index--
	}
	return it.band.At(it.index)
}

// Clone returns an independent copy of it positioned at the same index.
func (it *BandIterator) Clone() *BandIterator {
	c := *it
	return &c
}
