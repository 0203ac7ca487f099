package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal"
)

const separator = ","

// Parse converts a free-form blob of comma and newline separated values into
// a Series. Whitespace anywhere in the input is ignored and tokens that do not
// parse as a decimal float are skipped.
//
// Non-finite values are kept: "inf", "infinity" and "nan" in any case, and
// decimal literals whose magnitude overflows float64 (such as 1e400), which
// become ±Inf. Hexadecimal literals are not decimal and are dropped.
func Parse(text string) zscore.Series {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ReplaceAll(text, "\n", separator))

	fields := strings.Split(cleaned, separator)
	values := make(zscore.Series, 0, len(fields))
	for _, field := range fields {
		v, err := parseDecimal(field)
		if err != nil {
			if field != "" {
				internal.DefaultLogger.Trace("parser: dropping token %q: %v", field, err)
			}
			continue
		}
		values = append(values, v)
	}

	return values
}

func parseDecimal(field string) (float64, error) {
	digits := strings.TrimLeft(field, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(field, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}
