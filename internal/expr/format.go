package expr

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders a value for the result display. A negative precision
// gives the shortest representation that round-trips, otherwise the value is
// rounded to precision decimal places and trailing zeros are trimmed.
func FormatResult(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
