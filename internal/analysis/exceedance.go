package analysis

import (
	"math"

	"zscorecalc/adapters/stats/engine"
	"zscorecalc/domain/zscore"
)

// CountExceedances tallies values whose z-score reaches |threshold| on either
// side, over the whole series and over the sub-range bounded by start and end.
//
// Invalid bounds (empty range, or either bound outside 1..len) yield a zero
// Result. The sub-range membership test is inclusive on both ends while the
// sub-range denominator is end-start. A series with zero variance produces NaN
// z-scores, which never satisfy either comparison.
func CountExceedances(series zscore.Series, threshold float64, start, end int) zscore.Result {
	n := series.Len()
	subLen := end - start
	if subLen < 1 || end > n || start > n || end < 1 || start < 1 {
		return zscore.Result{}
	}

	mean, sd := engine.MeanStdDev(series)
	limit := math.Abs(threshold)

	var c zscore.Counts
	for i, v := range series {
		z := (v - mean) / sd
		inSub := i >= start && i <= end

		if z >= limit {
			c.PlusFull++
			if inSub {
				c.PlusSub++
			}
		}
		if z <= -limit {
			c.MinusFull++
			if inSub {
				c.MinusSub++
			}
		}
	}

	return zscore.NewResult(c, n, subLen)
}
