package analysis

import (
	"iter"

	"zscorecalc/adapters/stats/engine"
	"zscorecalc/domain/zscore"
)

// RollingWindows yields the mean and population standard deviation of every
// full window of the given width, in increasing offset order. Each point is
// keyed by offset + width/2. Nothing is computed until the sequence is
// ranged over, and each range starts again from the first window.
func RollingWindows(series zscore.Series, width int) iter.Seq[zscore.WindowPoint] {
	return func(yield func(zscore.WindowPoint) bool) {
		if width < 1 {
			return
		}
		for y := 0; y+width <= len(series); y++ {
			window := series[y : y+width]
			mean, sd := engine.MeanStdDev(window)
			if !yield(zscore.WindowPoint{Center: y + width/2, Mean: mean, StdDev: sd}) {
				return
			}
		}
	}
}

// WindowCount returns how many points RollingWindows will yield
func WindowCount(length, width int) int {
	if width < 1 || length < width {
		return 0
	}
	return length - width + 1
}
