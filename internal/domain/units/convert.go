// Package units implements the weight and height conversions between the
// imperial and metric systems. All conversions are pure functions over
// exact decimals, rounded half-up to the one-decimal storage scale, so a
// converted value does not round-trip to its source. That loss is by
// design and matches the stored precision of account measurements.
package units

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Conversion factors. Declared from strings so the factors are exact.
var (
	poundsPerKilogram = decimal.RequireFromString("2.20462262")
	kilogramsPerPound = decimal.RequireFromString("0.45359237")
	inchesPerCm       = decimal.RequireFromString("0.393701")
	cmPerInch         = decimal.RequireFromString("2.54")
)

// Errors returned for out-of-range conversion input.
var (
	ErrNegativePounds    = errors.New("input pounds must be a non-negative number")
	ErrNegativeKilograms = errors.New("input kilograms must be a non-negative number")
)

// scale is the number of fractional digits kept by every conversion.
const scale = 1

// PoundsToKilograms converts a weight in pounds to kilograms, rounded
// half-up to one decimal digit. Negative input is rejected.
func PoundsToKilograms(pounds decimal.Decimal) (decimal.Decimal, error) {
	if pounds.IsNegative() {
		return decimal.Decimal{}, ErrNegativePounds
	}
	return pounds.Mul(kilogramsPerPound).Round(scale), nil
}

// KilogramsToPounds converts a weight in kilograms to pounds, rounded
// half-up to one decimal digit. Negative input is rejected.
func KilogramsToPounds(kilograms decimal.Decimal) (decimal.Decimal, error) {
	if kilograms.IsNegative() {
		return decimal.Decimal{}, ErrNegativeKilograms
	}
	return kilograms.Mul(poundsPerKilogram).Round(scale), nil
}

// CentimetersToInches converts a height in centimeters to inches, rounded
// half-up to one decimal digit.
//
// Unlike the weight conversions, the height conversions accept any input;
// the sign check asymmetry is inherited behavior and kept as-is.
func CentimetersToInches(cm decimal.Decimal) decimal.Decimal {
	return cm.Mul(inchesPerCm).Round(scale)
}

// InchesToCentimeters converts a height in inches to centimeters, rounded
// half-up to one decimal digit.
func InchesToCentimeters(inches decimal.Decimal) decimal.Decimal {
	return inches.Mul(cmPerInch).Round(scale)
}

// InchesToFeetAndInches formats a height in inches for imperial display,
// e.g. "6 ft. 1 in.". The input is rounded half-up to the nearest whole
// inch before splitting into feet and remaining inches.
func InchesToFeetAndInches(inches decimal.Decimal) string {
	total := inches.Round(0).IntPart()
	feet := total / 12
	remaining := total % 12
	return fmt.Sprintf("%d ft. %d in.", feet, remaining)
}
