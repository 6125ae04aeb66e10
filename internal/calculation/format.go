package calculation

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f the way the calculator displays numbers: the shortest
// representation that round-trips, always with a decimal point or exponent
// ("5.0", "0.1", "1e+16"), and "inf", "-inf" or "nan" for non-finite values.
// Positional notation is used for decimal exponents in [-4, 16).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	exp := decimalExponent(f)
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the exponent of f in shortest scientific notation
func decimalExponent(f float64) int {
	if f == 0 {
		return 0
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	idx := strings.IndexByte(s, 'e')
	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}
	return exp
}
