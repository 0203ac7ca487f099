package analysis

import (
	"math"
	"slices"
	"testing"

	"zscorecalc/domain/zscore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(n int) zscore.Series {
	s := make(zscore.Series, n)
	for i := range s {
		s[i] = float64(i + 1)
	}
	return s
}

func TestRollingWindows_PointCountAndCenters(t *testing.T) {
	for _, tc := range []struct{ n, w int }{{10, 4}, {10, 10}, {250, 100}, {7, 1}, {9, 3}} {
		points := slices.Collect(RollingWindows(ramp(tc.n), tc.w))

		require.Len(t, points, tc.n-tc.w+1, "n=%d w=%d", tc.n, tc.w)
		assert.Equal(t, WindowCount(tc.n, tc.w), len(points))
		assert.Equal(t, tc.w/2, points[0].Center)
		for i := 1; i < len(points); i++ {
			assert.Equal(t, points[i-1].Center+1, points[i].Center)
		}
	}
}

func TestRollingWindows_Values(t *testing.T) {
	points := slices.Collect(RollingWindows(ramp(10), 4))

	first := points[0]
	assert.Equal(t, 2, first.Center)
	assert.Equal(t, 2.5, first.Mean)
	assert.InDelta(t, math.Sqrt(1.25), first.StdDev, 1e-12)

	last := points[len(points)-1]
	assert.Equal(t, 8, last.Center)
	assert.Equal(t, 8.5, last.Mean)
}

func TestRollingWindows_ShortSeriesIsEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(RollingWindows(ramp(6), zscore.WindowWidth)))
	assert.Empty(t, slices.Collect(RollingWindows(nil, 3)))
	assert.Equal(t, 0, WindowCount(6, zscore.WindowWidth))
}

func TestRollingWindows_NonPositiveWidth(t *testing.T) {
	assert.Empty(t, slices.Collect(RollingWindows(ramp(5), 0)))
	assert.Empty(t, slices.Collect(RollingWindows(ramp(5), -2)))
	assert.Equal(t, 0, WindowCount(5, 0))
}

func TestRollingWindows_Restartable(t *testing.T) {
	seq := RollingWindows(ramp(20), 5)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestRollingWindows_StopsEarly(t *testing.T) {
	visited := 0
	for p := range RollingWindows(ramp(50), 5) {
		visited++
		if p.Center == 4 {
			break
		}
	}
	assert.Equal(t, 3, visited)
}

func TestRollingWindows_ConstantWindowHasZeroDeviation(t *testing.T) {
	series := zscore.Series{3, 3, 3, 3, 3, 3}
	for p := range RollingWindows(series, 3) {
		assert.Equal(t, 3.0, p.Mean)
		assert.Equal(t, 0.0, p.StdDev)
	}
}
