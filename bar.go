// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bar computes a banded, anchored pairwise alignment between two
// DNA sequences: it finds seed anchors with an external local aligner,
// splits the problem at gaps too large to band directly, and runs the
// banded posterior-decoding pair-HMM over each resulting rectangle.
package bar

import (
	"github.com/kortschak/bar/anchor"
	"github.com/kortschak/bar/pairhmm"
)

// Parameters is the full set of tunables controlling anchor-finding,
// splitting, and the banded pair-HMM; see pairhmm.DefaultParameters for
// the defaults this package ships with.
type Parameters = pairhmm.Parameters

// AlignedPair is one base-to-base correspondence with its posterior
// match probability, as returned by GetAlignedPairs.
type AlignedPair = pairhmm.AlignedPair

// DefaultParameters returns the Parameters this package uses when none
// are supplied.
func DefaultParameters() Parameters { return pairhmm.DefaultParameters() }

// GetAlignedPairs computes the set of posterior-probable base
// correspondences between sX and sY. finder supplies the seed anchors
// that constrain the band; when sX and sY are small enough that
// p.AnchorMatrixBiggerThanThis is not exceeded, finder is not consulted
// and the whole matrix is banded unconstrained.
func GetAlignedPairs(sX, sY []byte, finder anchor.SeedFinder, p Parameters) ([]AlignedPair, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	anchors, err := anchor.GetBlastPairsForPairwiseAlignmentParameters(sX, sY, finder, p)
	if err != nil {
		return nil, err
	}

	symX := pairhmm.NewSymbolString(sX)
	symY := pairhmm.NewSymbolString(sY)

	return anchor.SplitAlignmentsByLargeGaps(anchors, symX, symY, p)
}
