package common

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders an amount for messages. Whole numbers keep one
// fractional digit ("-1.0", "20.0"). Magnitudes from 1e-3 up to 1e7 print
// in plain decimal form, everything else in scientific form ("-1.0E7",
// "1.0E-4", "2.5E-5").
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'g', -1, 64)
	}

	abs := math.Abs(amount)
	if abs != 0 && (abs >= 1e7 || abs < 1e-3) {
		return formatScientific(amount)
	}

	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatScientific turns Go's "1.5E+07" into "1.5E7" and "1E-04" into "1.0E-4".
func formatScientific(amount float64) string {
	s := strconv.FormatFloat(amount, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}
