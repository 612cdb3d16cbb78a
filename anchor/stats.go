package anchor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// statsOf returns the mean, variance, maximum, and sum of vs. It exists so
// Summarise has somewhere to put its linear-algebra: unlike the pair-HMM
// cell and diagonal dot products (which fold under LogAdd and so can't be
// expressed as a gonum reduction), split-rectangle areas are ordinary
// float64s and a genuine fit for gonum/floats and gonum/stat.
func statsOf(vs []float64) (mean, variance, max, total float64) {
	mean, variance = stat.MeanVariance(vs, nil)
	max = floats.Max(vs)
	total = floats.Sum(vs)
	return mean, variance, max, total
}
