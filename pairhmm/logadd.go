// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairhmm implements the anchored, banded pair-HMM aligner used by
// the cactus reconstruction pipeline to turn a pair of DNA sequences and a
// chain of anchor matches into posterior match probabilities, without ever
// materialising the full O(lX*lY) edit matrix.
package pairhmm

// LogZero is the additive identity for LogAdd: it represents a
// log-probability of zero probability. It is not -Inf so that arithmetic
// involving it stays finite and comparable.
const LogZero = -1e30

// logUnderflowThreshold is the |Δ| above which LogAdd short-circuits to
// max(x, y) rather than evaluating the interpolation.
const logUnderflowThreshold = 7.5

// lookup approximates log(exp(x)+1) for x in [0, logUnderflowThreshold]
// with a piecewise cubic fit over four ranges. The coefficients are taken
// directly from the reference aligner and must not be altered: posterior
// probabilities are compared bit-for-bit against it in tests.
func lookup(x float64) float64 {
	switch {
	case x <= 1.00:
		return ((-0.009350833524763*x+0.130659527668286)*x+0.498799810682272)*x + 0.693203116424741
	case x <= 2.50:
		return ((-0.014532321752540*x+0.139942324101744)*x+0.495635523139337)*x + 0.692140569840976
	case x <= 4.50:
		return ((-0.004605031767994*x+0.063427417320019)*x+0.695956496475118)*x + 0.514272634594009
	default:
		return ((-0.000458661602210*x+0.009695946122598)*x+0.930734667215156)*x + 0.168037164329057
	}
}

// LogAdd returns log(exp(x)+exp(y)), computed without leaving log space.
// LogZero is the identity: LogAdd(x, LogZero) == x for any finite x.
func LogAdd(x, y float64) float64 {
	if x < y {
		x, y = y, x
	}
	// x >= y from here on.
	if y == LogZero || x-y >= logUnderflowThreshold {
		return x
	}
	return lookup(x-y) + y
}
