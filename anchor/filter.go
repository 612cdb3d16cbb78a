// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor runs the external seed finder, turns its raw matches into
// a strictly-increasing anchor chain, and splits an alignment problem at
// gaps in that chain too large to band directly.
package anchor

import (
	"fmt"
	"math"

	"github.com/kortschak/bar/pairhmm"
)

// Pair is an (x, y) coordinate in the edit matrix's sequence space.
type Pair = [2]int

func badAnchors(format string, args ...interface{}) error {
	return &pairhmm.Error{Kind: pairhmm.BadAnchors, Msg: fmt.Sprintf(format, args...)}
}

// FilterToRemoveOverlap reduces a list of pairs that is sorted by x+y, and
// within that non-decreasing in x with y strictly increasing across equal-x
// runs, to the subset that is strictly increasing in both x and y.
//
// It traverses right to left to find the pairs that are minima of the
// suffix in both coordinates, then traverses left to right emitting a pair
// only when it strictly exceeds the last emitted pair in both coordinates
// and is one of those suffix minima.
func FilterToRemoveOverlap(sorted []Pair) ([]Pair, error) {
	minimal := make(map[Pair]bool, len(sorted))
	pX, pY := math.MaxInt, math.MaxInt
	for i := len(sorted) - 1; i >= 0; i-- {
		x, y := sorted[i][0], sorted[i][1]
		if x < pX && y < pY {
			minimal[sorted[i]] = true
		}
		if x < pX {
			pX = x
		}
		if y < pY {
			pY = y
		}
	}

	var out []Pair
	pX, pY = math.MinInt, math.MinInt
	pY2 := math.MinInt
	for _, pair := range sorted {
		x, y := pair[0], pair[1]
		if x > pX && y > pY && minimal[pair] {
			out = append(out, pair)
		}
		if x < pX {
			return nil, badAnchors("anchor pairs not sorted non-decreasing in x: %v after x=%d", pair, pX)
		}
		if x == pX && y <= pY2 {
			return nil, badAnchors("anchor pairs not strictly increasing in y within equal x=%d run: %v", x, pair)
		}
		pY2 = y
		if x > pX {
			pX = x
		}
		if y > pY {
			pY = y
		}
	}

	return out, nil
}
