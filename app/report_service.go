package app

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal"
	"zscorecalc/internal/analysis"
	"zscorecalc/internal/errors"
	"zscorecalc/internal/format"
	"zscorecalc/internal/parser"
)

var (
	// ErrEmptySeries means the data text held no numbers; there is no report
	// and nothing to notify.
	ErrEmptySeries = errors.EmptySeries()

	// ErrThreshold means the threshold text is not a number. Its message is
	// the notification shown to the user.
	ErrThreshold = errors.ThresholdParse(zscore.ThresholdErrorMessage, nil)
)

// ReportService turns the two raw inputs of a calculation into the text report
type ReportService struct {
	logger *internal.Logger
}

// NewReportService creates a report service logging through logger, or the
// default logger when nil
func NewReportService(logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{logger: logger}
}

// Calculation holds everything computed for one report
type Calculation struct {
	Series    zscore.Series
	Threshold float64
	Result    zscore.Result
	Windows   iter.Seq[zscore.WindowPoint]
}

// Calculate parses both inputs and runs the exceedance count. The rolling
// windows are left as a lazy sequence.
func (s *ReportService) Calculate(rawText, thresholdText string) (*Calculation, error) {
	series := parser.Parse(rawText)
	if series.Empty() {
		return nil, ErrEmptySeries
	}

	threshold, err := strconv.ParseFloat(thresholdText, 64)
	if err != nil {
		return nil, errors.ThresholdParse(zscore.ThresholdErrorMessage, err)
	}

	return &Calculation{
		Series:    series,
		Threshold: threshold,
		Result:    analysis.CountExceedances(series, threshold, zscore.SubRangeStart, zscore.SubRangeEnd),
		Windows:   analysis.RollingWindows(series, zscore.WindowWidth),
	}, nil
}

// BuildReport runs a full calculation and renders it. It returns
// ErrEmptySeries when the data has no values and an error matching
// ErrThreshold when the threshold text does not parse.
func (s *ReportService) BuildReport(rawText, thresholdText string) (string, error) {
	startTime := time.Now()

	calc, err := s.Calculate(rawText, thresholdText)
	if err != nil {
		s.logger.Debug("report skipped: %v", err)
		return "", err
	}

	out := Render(calc)

	s.logger.Debug("report built: values=%d threshold=%g windows=%d elapsed=%v",
		calc.Series.Len(), calc.Threshold,
		analysis.WindowCount(calc.Series.Len(), zscore.WindowWidth), time.Since(startTime))

	return out, nil
}

// Render formats a calculation as the eight labelled count and percentage
// lines followed by one "center,mean,stddev" line per rolling window.
func Render(calc *Calculation) string {
	var b strings.Builder
	r := calc.Result

	fmt.Fprintf(&b, "\nZC + A:    \t%d\n", r.PlusCountFull)
	fmt.Fprintf(&b, "\nZC - A:    \t%d\n", r.MinusCountFull)
	fmt.Fprintf(&b, "\nZC + B:    \t%d\n", r.PlusCountSub)
	fmt.Fprintf(&b, "\nZC - B:    \t%d\n", r.MinusCountSub)

	fmt.Fprintf(&b, "\n\nZP + A:    \t%s\n", format.Pretty(r.PlusPercentFull, zscore.PercentDigits))
	fmt.Fprintf(&b, "\nZP - A:    \t%s\n", format.Pretty(r.MinusPercentFull, zscore.PercentDigits))
	fmt.Fprintf(&b, "\nZP + B:    \t%s\n", format.Pretty(r.PlusPercentSub, zscore.PercentDigits))
	fmt.Fprintf(&b, "\nZP - B:    \t%s\n", format.Pretty(r.MinusPercentSub, zscore.PercentDigits))

	if calc.Windows != nil {
		for p := range calc.Windows {
			fmt.Fprintf(&b, "\n%d,%s,%s", p.Center,
				format.Pretty(p.Mean, zscore.WindowDigits),
				format.Pretty(p.StdDev, zscore.WindowDigits))
		}
	}

	return b.String()
}
