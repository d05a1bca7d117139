package sus

import (
	"math"
	"strconv"
)

// FormatNumber renders value in its minimal decimal form, so "4" rather
// than "4.0", but "4.5" stays "4.5".
func FormatNumber(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatBase36 renders value in base-36, zero padded to width digits.
func formatBase36(value, width int) string {
	s := strconv.FormatInt(int64(value), 36)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// base36Digit renders a single base-36 digit, for lanes, widths and
// channels which are all below 36.
func base36Digit(value int) string {
	return strconv.FormatInt(int64(value), 36)
}
