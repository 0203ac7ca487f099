package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs. An empty slice yields NaN; callers
// that need a number must guarantee at least one value.
func Mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

// PopStdDev returns the population standard deviation of xs around a mean the
// caller already computed: sqrt(sum((x-mean)^2) / n).
func PopStdDev(xs []float64, mean float64) float64 {
	return math.Sqrt(stat.MomentAbout(2, xs, mean, nil))
}

// MeanStdDev computes both moments of xs in one call
func MeanStdDev(xs []float64) (mean, stdDev float64) {
	mean = Mean(xs)
	return mean, PopStdDev(xs, mean)
}

// PercentChange returns the relative change from one value to another as a
// percentage of the magnitude of the starting value.
func PercentChange(from, to float64) float64 {
	return (to - from) / math.Abs(from) * 100.0
}
