package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal/errors"
)

// MinSummaryValues is the smallest series SummarizeSeries accepts; quartiles
// need two values on each side of the median.
const MinSummaryValues = 4

// SeriesSummary describes the shape of a parsed series
type SeriesSummary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"` // population
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
	Outliers int     `json:"outliers"` // outside 1.5 IQR fences
}

// SummarizeSeries computes descriptive statistics for a series
func SummarizeSeries(series zscore.Series) (SeriesSummary, error) {
	summary := SeriesSummary{Count: series.Len()}
	if summary.Count < MinSummaryValues {
		return summary, errors.InvalidInput("summary needs at least 4 values")
	}

	data := stats.Float64Data(series)

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, errors.Wrap(err, "mean")
	}
	if summary.StdDev, err = stats.StandardDeviationPopulation(data); err != nil {
		return summary, errors.Wrap(err, "standard deviation")
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, errors.Wrap(err, "min")
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, errors.Wrap(err, "max")
	}

	quartiles, err := stats.Quartile(data)
	if err != nil {
		return summary, errors.Wrap(err, "quartiles")
	}
	summary.Q1, summary.Median, summary.Q3 = quartiles.Q1, quartiles.Q2, quartiles.Q3

	summary.Skewness = calculateSkewness(series, summary.Mean, summary.StdDev)
	summary.Outliers = detectOutliers(series, summary.Q1, summary.Q3)

	return summary, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// detectOutliers identifies outliers using IQR method
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}
