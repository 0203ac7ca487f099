package zscore

// ============================================================================
// FIXED ANALYSIS PARAMETERS
// ============================================================================

const (
	WindowWidth   = 100 // Rolling window width in samples
	SubRangeStart = 100 // First index of the "B" sub-range
	SubRangeEnd   = 300 // End bound of the "B" sub-range (denominator is End-Start)

	PercentDigits = 2 // Fractional digits for exceedance percentages
	WindowDigits  = 4 // Fractional digits for rolling mean/stddev

	DefaultThresholdText  = "3.0"
	ThresholdErrorMessage = "Z Threshold Error"
)

// ============================================================================
// VALUE TYPES
// ============================================================================

// Series is an ordered numeric sequence parsed from raw input text.
// An empty Series means there is nothing to compute.
type Series []float64

// Len returns the number of values in the series
func (s Series) Len() int {
	return len(s)
}

// Empty reports whether the series holds no values
func (s Series) Empty() bool {
	return len(s) == 0
}

// Counts holds raw exceedance tallies before percentages are derived
type Counts struct {
	PlusFull  int
	MinusFull int
	PlusSub   int
	MinusSub  int
}

// Result summarises threshold exceedances over the full series ("A") and the
// sub-range ("B").
// INVARIANTS:
// - Percent fields are always Count / denominator * 100
// - Full denominator is the series length, sub denominator is End-Start
type Result struct {
	PlusCountFull    int     `json:"plus_count_full"`
	MinusCountFull   int     `json:"minus_count_full"`
	PlusPercentFull  float64 `json:"plus_percent_full"`
	MinusPercentFull float64 `json:"minus_percent_full"`
	PlusCountSub     int     `json:"plus_count_sub"`
	MinusCountSub    int     `json:"minus_count_sub"`
	PlusPercentSub   float64 `json:"plus_percent_sub"`
	MinusPercentSub  float64 `json:"minus_percent_sub"`
}

// NewResult derives a Result from raw counts and the two denominators.
// It is the only place percentages are computed.
func NewResult(c Counts, fullLen, subLen int) Result {
	return Result{
		PlusCountFull:    c.PlusFull,
		MinusCountFull:   c.MinusFull,
		PlusPercentFull:  percent(c.PlusFull, fullLen),
		MinusPercentFull: percent(c.MinusFull, fullLen),
		PlusCountSub:     c.PlusSub,
		MinusCountSub:    c.MinusSub,
		PlusPercentSub:   percent(c.PlusSub, subLen),
		MinusPercentSub:  percent(c.MinusSub, subLen),
	}
}

// IsZero reports whether no exceedance was recorded anywhere
func (r Result) IsZero() bool {
	return r == Result{}
}

func percent(count, denominator int) float64 {
	return float64(count) / float64(denominator) * 100.0
}

// WindowPoint is the mean and population standard deviation of one rolling
// window, keyed by the index at the window's center.
type WindowPoint struct {
	Center int     `json:"center"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}
