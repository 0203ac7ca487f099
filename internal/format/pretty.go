package format

import (
	"math"
	"strconv"
	"strings"
)

// Pretty renders value in fixed-point notation with the given number of
// fractional digits, then drops trailing zeros and a bare trailing point:
// 1.50 becomes "1.5" and 2.00 becomes "2".
//
// Large and tiny magnitudes are not switched to scientific notation.
// Infinities render as "inf" and "-inf", NaN as "NaN".
func Pretty(value float64, digits int) string {
	if math.IsInf(value, 0) {
		if value < 0 {
			return "-inf"
		}
		return "inf"
	}
	s := strconv.FormatFloat(value, 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
