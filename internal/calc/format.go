package calc

import (
	"math"
	"strconv"
)

const (
	// tolerance is the absolute error under which a rounded value is
	// considered equal to the value it was rounded from.
	tolerance = 1e-7

	// maxPrecision bounds the clean-representation search: fractional
	// precisions 0..maxPrecision are tried in increasing order.
	maxPrecision = 7

	// totalDigits caps the rendered significant digits when no clean
	// low-precision representation exists.
	totalDigits = 12
)

// Format renders value as calculator display text.
//
// While the user is entering a decimal fraction (inFraction true) the value
// is rendered with exactly fractionDigits digits after the point, preserving
// trailing zeros as typed; with zero digits typed so far the text carries the
// trailing "." the user just entered ("2."). Otherwise Format returns the
// shortest fractional precision in 0..7 that reproduces value within
// tolerance, falling back to a fixed total digit budget for values with no
// clean short representation. NaN and ±Inf render as their usual tokens and
// never panic.
func Format(value float64, inFraction bool, fractionDigits uint) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	if inFraction {
		text := strconv.FormatFloat(value, 'f', int(fractionDigits), 64)
		if fractionDigits == 0 {
			text += "."
		}
		return text
	}

	if value == 0 {
		return "0"
	}

	for i := 0; i <= maxPrecision; i++ {
		factor := math.Pow(10, float64(i))
		scaled := value * factor
		if math.Abs(scaled) >= 1<<53 {
			// past 2^53 rounding the scaled value is no longer exact
			break
		}
		rounded := math.Round(scaled) / factor
		if math.Abs(value-rounded) < tolerance {
			return strconv.FormatFloat(rounded, 'f', i, 64)
		}
	}

	// Large or high-precision values: spend the digit budget on the integer
	// part first and keep whatever is left for the fraction.
	intPart := math.Trunc(math.Abs(value))
	intDigits := 0
	if intPart != 0 {
		intDigits = int(math.Ceil(math.Log10(intPart)))
	}
	precision := totalDigits - intDigits
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
