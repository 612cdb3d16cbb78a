package pairhmm

import "math"

// xChar returns the symbol of sX at the x coordinate implied by (xay, xmy),
// or N if x == 0 (the "before the first base" boundary column).
func xChar(sX SymbolString, xay, xmy int) Symbol {
	x := XCoord(xay, xmy)
	if x > 0 {
		return sX[x-1]
	}
	return N
}

// yChar is the y-axis analogue of xChar.
func yChar(sY SymbolString, xay, xmy int) Symbol {
	y := YCoord(xay, xmy)
	if y > 0 {
		return sY[y-1]
	}
	return N
}

// cellCalculation is the shape of calculateForward/calculateBackward.
type cellCalculation func(current, lower, middle, upper *Cell, cX, cY Symbol)

// diagonalCalculation walks every cell of current, sourcing its lower and
// upper neighbours from m1 (xay-1) and its middle neighbour from m2
// (xay-2), and applying calc to each. Either source may be nil.
func diagonalCalculation(current, m1, m2 *DpDiagonal, sX, sY SymbolString, calc cellCalculation) {
	d := current.Diagonal()
	for xmy := d.XmyL; xmy <= d.XmyR; xmy += 2 {
		cX := xChar(sX, d.Xay, xmy)
		cY := yChar(sY, d.Xay, xmy)
		cur := current.Cell(xmy)
		var lower, middle, upper *Cell
		if m1 != nil {
			lower = m1.Cell(xmy - 1)
			upper = m1.Cell(xmy + 1)
		}
		if m2 != nil {
			middle = m2.Cell(xmy)
		}
		calc(cur, lower, middle, upper, cX, cY)
	}
}

func diagonalCalculationForward(xay int, matrix *DpMatrix, sX, sY SymbolString) {
	diagonalCalculation(matrix.Get(xay), matrix.Get(xay-1), matrix.Get(xay-2), sX, sY, calculateForward)
}

func diagonalCalculationBackward(xay int, matrix *DpMatrix, sX, sY SymbolString) {
	diagonalCalculation(matrix.Get(xay), matrix.Get(xay-1), matrix.Get(xay-2), sX, sY, calculateBackward)
}

// diagonalCalculationTotalProbability computes Z for antidiagonal xay: the
// dot product of the forward and backward cells there, plus the
// contribution of matches that pass straight through xay without either
// matrix having a cell stored there.
func diagonalCalculationTotalProbability(xay int, forward, backward *DpMatrix, sX, sY SymbolString) float64 {
	fwd := forward.Get(xay)
	back := backward.Get(xay)
	total := fwd.DotProduct(back)

	fwdM1 := forward.Get(xay - 1)
	backP1 := backward.Get(xay + 1)
	if fwdM1 != nil && backP1 != nil {
		matchDiagonal := backP1.Clone()
		matchDiagonal.ZeroValues()
		diagonalCalculation(matchDiagonal, nil, fwdM1, sX, sY, calculateForward)
		total = LogAdd(total, matchDiagonal.DotProduct(backP1))
	}
	return total
}

// diagonalCalculationPosteriorMatchProbs appends an AlignedPair for every
// interior cell (x>0, y>0) of antidiagonal xay whose posterior match
// probability meets threshold.
func diagonalCalculationPosteriorMatchProbs(xay int, forward, backward *DpMatrix, threshold, totalProbability float64, out *[]AlignedPair) {
	fwd := forward.Get(xay)
	back := backward.Get(xay)
	d := fwd.Diagonal()
	for xmy := d.XmyL; xmy <= d.XmyR; xmy += 2 {
		x := XCoord(d.Xay, xmy)
		y := YCoord(d.Xay, xmy)
		if x <= 0 || y <= 0 {
			continue
		}
		cf := fwd.Cell(xmy)
		cb := back.Cell(xmy)
		prob := math.Exp((cf[Match] + cb[Match]) - totalProbability)
		if prob < threshold {
			continue
		}
		if prob > 1.0 {
			prob = 1.0
		}
		q := int(math.Floor(prob * ProbScale))
		*out = append(*out, AlignedPair{Prob: q, X: x - 1, Y: y - 1})
	}
}

// internalPanic signals a broken invariant. It is recovered at the top of
// GetAlignedPairsWithBanding and surfaced as an Internal error; it must
// never escape that function uncaught.
func internalPanic(format string, args ...interface{}) {
	panic(errf(Internal, format, args...))
}

func internalAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		internalPanic(format, args...)
	}
}

// GetAlignedPairsWithBanding is the banded posterior engine: given a
// strictly-increasing, non-overlapping anchor chain within
// [0,lX)x[0,lY), it sweeps forward along the band, periodically opens a
// bounded backward pass to checkpoint and emit posterior match
// probabilities, and evicts antidiagonals once they are no longer needed.
//
// It runs single-threaded and deterministically; repeated calls with
// identical inputs produce the same (unordered) set of pairs.
func GetAlignedPairsWithBanding(anchors [][2]int, sX, sY SymbolString, p Parameters) (alignedPairs []AlignedPair, err error) {
	if verr := p.Validate(); verr != nil {
		return nil, verr
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				alignedPairs = nil
				err = e
				return
			}
			panic(r)
		}
	}()

	D := len(sX) + len(sY)
	if D == 0 {
		return nil, nil
	}

	band, berr := NewBand(anchors, len(sX), len(sY), p.DiagonalExpansion)
	if berr != nil {
		return nil, berr
	}
	forwardIt := NewBandIterator(band)
	forwardMatrix := NewDpMatrix(D)
	forwardMatrix.Create(forwardIt.Next()).InitialiseValues(startStateProb)

	backwardMatrix := NewDpMatrix(D)

	tracedBackTo := 0
	totalPosteriorCalculations := 0

	for {
		d := forwardIt.Next()
		forwardMatrix.Create(d)
		diagonalCalculationForward(d.Xay, forwardMatrix, sX, sY)

		atEnd := d.Xay == D
		tracebackPoint := d.Xay >= tracedBackTo+p.MinDiagsBetweenTraceBack && d.Width() <= 2*p.DiagonalExpansion+1

		if atEnd || tracebackPoint {
			backwardMatrix.Create(d).InitialiseValues(endStateProb)
			if d.Xay > tracedBackTo+1 {
				j := forwardMatrix.Get(d.Xay - 1)
				internalAssert(j != nil, "missing forward diagonal %d while seeding backward pass", d.Xay-1)
				backwardMatrix.Create(j.Diagonal())
			}

			backwardIt := forwardIt.Clone()
			d2 := backwardIt.Previous()
			internalAssert(d2.Xay == d.Xay, "backward iterator did not clone onto the forward position")

			tracedBackFrom := d.Xay
			if !atEnd {
				tracedBackFrom -= p.TraceBackDiagonals + 1
			}

			totalProbability := LogZero
			countThisTraceback := 0

			for d2.Xay > tracedBackTo {
				if d2.Xay > tracedBackTo+2 {
					j := forwardMatrix.Get(d2.Xay - 2)
					internalAssert(j != nil, "missing forward diagonal %d while extending backward pass", d2.Xay-2)
					backwardMatrix.Create(j.Diagonal())
				}
				if d2.Xay > tracedBackTo+1 {
					diagonalCalculationBackward(d2.Xay, backwardMatrix, sX, sY)
				}
				if d2.Xay <= tracedBackFrom {
					internalAssert(forwardMatrix.Get(d2.Xay) != nil, "missing forward diagonal %d at emission", d2.Xay)
					internalAssert(forwardMatrix.Get(d2.Xay-1) != nil, "missing forward diagonal %d at emission", d2.Xay-1)
					internalAssert(backwardMatrix.Get(d2.Xay) != nil, "missing backward diagonal %d at emission", d2.Xay)
					if d2.Xay != D {
						internalAssert(backwardMatrix.Get(d2.Xay+1) != nil, "missing backward diagonal %d at emission", d2.Xay+1)
					}

					if countThisTraceback%10 == 0 {
						totalProbability = diagonalCalculationTotalProbability(d2.Xay, forwardMatrix, backwardMatrix, sX, sY)
					}
					countThisTraceback++

					diagonalCalculationPosteriorMatchProbs(d2.Xay, forwardMatrix, backwardMatrix, p.Threshold, totalProbability, &alignedPairs)

					if d2.Xay < tracedBackFrom || atEnd {
						forwardMatrix.Delete(d2.Xay)
					}
				}
				if d2.Xay+1 <= D {
					backwardMatrix.Delete(d2.Xay + 1)
				}
				d2 = backwardIt.Previous()
			}

			tracedBackTo = tracedBackFrom
			backwardMatrix.Delete(d2.Xay + 1)
			forwardMatrix.Delete(d2.Xay)

			internalAssert(backwardMatrix.Active() == 0, "backward matrix not empty after traceback")
			totalPosteriorCalculations += countThisTraceback
			if !atEnd {
				internalAssert(forwardMatrix.Active() == p.TraceBackDiagonals+2,
					"unexpected forward matrix occupancy %d after traceback", forwardMatrix.Active())
			}
		}

		if atEnd {
			break
		}
	}

	internalAssert(totalPosteriorCalculations == D, "posterior calculation count %d != %d", totalPosteriorCalculations, D)
	internalAssert(tracedBackTo == D, "traceback did not reach the end of the matrix")
	internalAssert(backwardMatrix.Active() == 0, "backward matrix not empty at end of sweep")
	internalAssert(forwardMatrix.Active() == 0, "forward matrix not empty at end of sweep")

	return alignedPairs, nil
}
